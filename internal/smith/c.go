package smith

import (
	"fmt"
	"strings"

	"github.com/whiskeyo/meksmith/internal/ast"
)

// CSmith lowers a module into C typedef declarations. Enumerations become
// typedef'd enums, structures and unions become typedef'd aggregates, and
// aliases become plain typedefs. Named ranges expand to one constant or
// member per covered value, suffixed with that value.
type CSmith struct{}

func (CSmith) Target() string { return "c" }

// cScalar maps the schema scalar kinds to <stdint.h>/<stdbool.h> spellings.
var cScalar = map[ast.Builtin]string{
	ast.BuiltinInt8:    "int8_t",
	ast.BuiltinInt16:   "int16_t",
	ast.BuiltinInt32:   "int32_t",
	ast.BuiltinInt64:   "int64_t",
	ast.BuiltinUint8:   "uint8_t",
	ast.BuiltinUint16:  "uint16_t",
	ast.BuiltinUint32:  "uint32_t",
	ast.BuiltinUint64:  "uint64_t",
	ast.BuiltinFloat32: "float",
	ast.BuiltinFloat64: "double",
	ast.BuiltinBit:     "bool",
	ast.BuiltinByte:    "uint8_t",
}

func (c CSmith) Generate(m *ast.Module) string {
	var b strings.Builder
	b.WriteString("#include <stdint.h>\n#include <stdbool.h>\n\n")
	for i := range m.Decls {
		d := &m.Decls[i]
		switch d.Kind {
		case ast.DeclEnum:
			c.genEnum(&b, d)
		case ast.DeclStruct:
			c.genStruct(&b, d)
		case ast.DeclUnion:
			c.genUnion(&b, d)
		case ast.DeclAlias:
			c.genAlias(&b, d)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// spelling returns the C type spelling of a reference in member position.
// Static array arity is carried by the declarator, not the spelling, so a
// static wrapper contributes only its element type here.
func (c CSmith) spelling(t ast.TypeRef) string {
	switch t.Kind {
	case ast.TypeBuiltin:
		return cScalar[t.Builtin]
	case ast.TypeNamed:
		return t.Name
	case ast.TypeStaticArray:
		return c.spelling(*t.Elem)
	case ast.TypeDynamicArray:
		return c.spelling(*t.Elem) + "*"
	}
	return ""
}

func (c CSmith) genEnum(b *strings.Builder, d *ast.Decl) {
	fmt.Fprintf(b, "typedef enum {\n")
	for _, f := range d.EnumFields {
		if f.Lo == f.Hi {
			fmt.Fprintf(b, "    %s_%s = %d,\n", d.Name, f.Name, f.Lo)
			continue
		}
		for v := f.Lo; ; v++ {
			fmt.Fprintf(b, "    %s_%s_%d = %d,\n", d.Name, f.Name, v, v)
			if v == f.Hi {
				break
			}
		}
	}
	fmt.Fprintf(b, "} %s;\n", d.Name)
}

func (c CSmith) genStruct(b *strings.Builder, d *ast.Decl) {
	fmt.Fprintf(b, "typedef struct {\n")
	for _, f := range d.StructFields {
		c.genMember(b, f.Type, f.Name)
	}
	fmt.Fprintf(b, "} %s;\n", d.Name)
}

func (c CSmith) genUnion(b *strings.Builder, d *ast.Decl) {
	fmt.Fprintf(b, "typedef union {\n")
	for _, f := range d.UnionFields {
		if f.Lo == f.Hi {
			c.genMember(b, f.Type, f.Name)
			continue
		}
		for v := f.Lo; ; v++ {
			c.genMember(b, f.Type, fmt.Sprintf("%s_%d", f.Name, v))
			if v == f.Hi {
				break
			}
		}
	}
	fmt.Fprintf(b, "} %s;\n", d.Name)
}

func (c CSmith) genAlias(b *strings.Builder, d *ast.Decl) {
	if d.Alias.Kind == ast.TypeStaticArray {
		fmt.Fprintf(b, "typedef %s %s[%d];\n", c.spelling(*d.Alias.Elem), d.Name, d.Alias.Len)
		return
	}
	fmt.Fprintf(b, "typedef %s %s;\n", c.spelling(d.Alias), d.Name)
}

// genMember writes one aggregate member, attaching static array arity to the
// declarator.
func (c CSmith) genMember(b *strings.Builder, t ast.TypeRef, name string) {
	if t.Kind == ast.TypeStaticArray {
		fmt.Fprintf(b, "    %s %s[%d];\n", c.spelling(*t.Elem), name, t.Len)
		return
	}
	fmt.Fprintf(b, "    %s %s;\n", c.spelling(t), name)
}
