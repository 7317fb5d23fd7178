package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo        Code = 1000
	LexUnknownChar Code = 1001
	LexBadNumber   Code = 1002

	// Syntax
	SynInfo                 Code = 2000
	SynUnexpectedToken      Code = 2001
	SynExpectDeclaration    Code = 2002
	SynExpectType           Code = 2003
	SynUnknownAttribute     Code = 2004
	SynCommentInDeclaration Code = 2005
	SynExpectField          Code = 2006
	SynBadRange             Code = 2007

	// Resolution
	ResInfo  Code = 3000
	ResCycle Code = 3001

	// IO (file-based entry point only)
	IOReadFailed Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexInfo:        "lexical info",
	LexUnknownChar: "unknown character",
	LexBadNumber:   "malformed numeric literal",

	SynInfo:                 "syntax info",
	SynUnexpectedToken:      "unexpected token",
	SynExpectDeclaration:    "expected declaration",
	SynExpectType:           "expected type",
	SynUnknownAttribute:     "unknown attribute",
	SynCommentInDeclaration: "comment inside declaration",
	SynExpectField:          "expected field",
	SynBadRange:             "malformed range",

	ResInfo:  "resolution info",
	ResCycle: "type dependency cycle",

	IOReadFailed: "cannot read schema file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("RES%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
