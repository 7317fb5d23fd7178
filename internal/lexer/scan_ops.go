package lexer

import (
	"fmt"

	"github.com/whiskeyo/meksmith/internal/diag"
	"github.com/whiskeyo/meksmith/internal/token"
)

// scanPunct consumes a punctuation token, preferring the longest match
// ('=>' over '=', '..' over '.').
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	var kind token.Kind
	switch ch {
	case '=':
		if lx.cursor.Eat('>') {
			kind = token.FatArrow
		} else {
			kind = token.Assign
		}
	case '.':
		if lx.cursor.Eat('.') {
			kind = token.DotDot
		} else {
			kind = token.Invalid
		}
	case ':':
		kind = token.Colon
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	default:
		kind = token.Invalid
	}

	sp := lx.cursor.SpanFrom(start)
	if kind == token.Invalid {
		lx.report(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", lx.text(sp)))
	}
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
