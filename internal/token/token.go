package token

import (
	"github.com/whiskeyo/meksmith/internal/source"
)

// Token represents a single schema token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsKeyword reports whether the token is a schema keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwEnum, KwStruct, KwUnion, KwUsing:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case Assign, FatArrow, DotDot, Colon, Semicolon, Comma,
		LBrace, RBrace, LBracket, RBracket:
		return true
	default:
		return false
	}
}
