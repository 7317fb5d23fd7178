package lexer

import (
	"github.com/whiskeyo/meksmith/internal/diag"
	"github.com/whiskeyo/meksmith/internal/token"
)

// scanNumber consumes an unsigned integer literal: decimal, 0x hex, or 0b
// binary. A base prefix without at least one digit is a lexical error.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		switch lx.cursor.Peek() {
		case 'x', 'X':
			lx.cursor.Bump()
			if !isHex(lx.cursor.Peek()) {
				sp := lx.cursor.SpanFrom(start)
				lx.report(diag.LexBadNumber, sp, "expected hexadecimal digit after '0x'")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.IntLit, Span: sp, Text: lx.text(sp)}

		case 'b', 'B':
			lx.cursor.Bump()
			if !isBin(lx.cursor.Peek()) {
				sp := lx.cursor.SpanFrom(start)
				lx.report(diag.LexBadNumber, sp, "expected binary digit after '0b'")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			for isBin(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.IntLit, Span: sp, Text: lx.text(sp)}
		}
		// plain "0" or decimal with a leading zero
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.IntLit, Span: sp, Text: lx.text(sp)}
}
