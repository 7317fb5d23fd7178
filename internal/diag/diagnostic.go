package diag

import (
	"github.com/whiskeyo/meksmith/internal/source"
)

// Note is a secondary span/message pair attached to a Diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is the central record produced by the lexer, parser, and
// resolver. It is data-only; rendering lives in internal/diagfmt.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
