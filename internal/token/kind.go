package token

// Kind represents the category of a schema token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the schema input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an unsigned integer literal (decimal, 0x, 0b).
	IntLit
	// Comment represents a '#' line comment. Comments are significant to the
	// parser: they are legal only between top-level declarations.
	Comment

	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwUnion represents the 'union' keyword.
	KwUnion // union
	// KwUsing represents the 'using' keyword.
	KwUsing // using

	// Assign represents '='.
	Assign // =
	// FatArrow represents '=>'.
	FatArrow // =>
	// DotDot represents the inclusive range operator '..'.
	DotDot // ..
	// Colon represents ':'.
	Colon // :
	// Semicolon represents ';'.
	Semicolon // ;
	// Comma represents ','.
	Comma // ,
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case EOF:
		return "end of input"
	case Ident:
		return "identifier"
	case IntLit:
		return "integer literal"
	case Comment:
		return "comment"
	case KwEnum:
		return "'enum'"
	case KwStruct:
		return "'struct'"
	case KwUnion:
		return "'union'"
	case KwUsing:
		return "'using'"
	case Assign:
		return "'='"
	case FatArrow:
		return "'=>'"
	case DotDot:
		return "'..'"
	case Colon:
		return "':'"
	case Semicolon:
		return "';'"
	case Comma:
		return "','"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	}
	return "unknown"
}
