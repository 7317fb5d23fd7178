package ast

// Builtin identifies one of the fixed scalar kinds. Builtins never reference
// other declarations.
type Builtin uint8

const (
	BuiltinInt8 Builtin = iota
	BuiltinInt16
	BuiltinInt32
	BuiltinInt64
	BuiltinUint8
	BuiltinUint16
	BuiltinUint32
	BuiltinUint64
	BuiltinFloat32
	BuiltinFloat64
	BuiltinBit
	BuiltinByte
)

// builtinNames maps schema spellings to scalar kinds. This table is the only
// long-lived shared state of the compiler and it is read-only.
var builtinNames = map[string]Builtin{
	"int8":    BuiltinInt8,
	"int16":   BuiltinInt16,
	"int32":   BuiltinInt32,
	"int64":   BuiltinInt64,
	"uint8":   BuiltinUint8,
	"uint16":  BuiltinUint16,
	"uint32":  BuiltinUint32,
	"uint64":  BuiltinUint64,
	"float32": BuiltinFloat32,
	"float64": BuiltinFloat64,
	"bit":     BuiltinBit,
	"byte":    BuiltinByte,
}

// LookupBuiltin returns the scalar kind for a schema spelling, if any.
func LookupBuiltin(name string) (Builtin, bool) {
	b, ok := builtinNames[name]
	return b, ok
}

func (b Builtin) String() string {
	switch b {
	case BuiltinInt8:
		return "int8"
	case BuiltinInt16:
		return "int16"
	case BuiltinInt32:
		return "int32"
	case BuiltinInt64:
		return "int64"
	case BuiltinUint8:
		return "uint8"
	case BuiltinUint16:
		return "uint16"
	case BuiltinUint32:
		return "uint32"
	case BuiltinUint64:
		return "uint64"
	case BuiltinFloat32:
		return "float32"
	case BuiltinFloat64:
		return "float64"
	case BuiltinBit:
		return "bit"
	case BuiltinByte:
		return "byte"
	}
	return "unknown"
}
