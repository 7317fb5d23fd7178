package parser

import (
	"strings"
	"testing"

	"github.com/whiskeyo/meksmith/internal/ast"
	"github.com/whiskeyo/meksmith/internal/diag"
	"github.com/whiskeyo/meksmith/internal/lexer"
	"github.com/whiskeyo/meksmith/internal/source"
)

func parse(t *testing.T, src string) (*ast.Module, *diag.Bag, bool) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.mek", []byte(src)))
	bag := diag.NewBag(0)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	module, ok := ParseModule(lx, Options{Reporter: reporter})
	return module, bag, ok
}

func mustParse(t *testing.T, src string) *ast.Module {
	t.Helper()
	module, bag, ok := parse(t, src)
	if !ok {
		d, _ := bag.FirstError()
		t.Fatalf("parse failed: %s", d.Message)
	}
	return module
}

func mustFail(t *testing.T, src string, code diag.Code) diag.Diagnostic {
	t.Helper()
	module, bag, ok := parse(t, src)
	if ok {
		t.Fatalf("parse succeeded with %d declarations, want failure", len(module.Decls))
	}
	d, found := bag.FirstError()
	if !found {
		t.Fatalf("parse failed without a diagnostic")
	}
	if d.Code != code {
		t.Fatalf("code = %s, want %s (message: %s)", d.Code.ID(), code.ID(), d.Message)
	}
	return d
}

func TestParseEnum(t *testing.T) {
	m := mustParse(t, "enum E {\n    a = 1;\n    b = 2..4;\n    c = 0x10;\n    d = 0b101;\n};\n")
	if len(m.Decls) != 1 {
		t.Fatalf("decls = %d, want 1", len(m.Decls))
	}
	d := m.Decls[0]
	if d.Kind != ast.DeclEnum || d.Name != "E" {
		t.Fatalf("decl = %s %s", d.Kind, d.Name)
	}
	fields := d.EnumFields
	if len(fields) != 4 {
		t.Fatalf("fields = %d, want 4", len(fields))
	}
	if fields[0].Name != "a" || fields[0].Lo != 1 || fields[0].Hi != 1 || fields[0].IsRange {
		t.Errorf("field a = %+v", fields[0])
	}
	if fields[1].Name != "b" || fields[1].Lo != 2 || fields[1].Hi != 4 || !fields[1].IsRange {
		t.Errorf("field b = %+v", fields[1])
	}
	if fields[2].Lo != 0x10 {
		t.Errorf("hex literal parsed as %d", fields[2].Lo)
	}
	if fields[3].Lo != 5 {
		t.Errorf("binary literal parsed as %d", fields[3].Lo)
	}
}

func TestParseLeadingZeroDecimalStaysDecimal(t *testing.T) {
	m := mustParse(t, "enum E {\n    a = 010;\n    b = 09;\n};\n")
	fields := m.Decls[0].EnumFields
	if fields[0].Lo != 10 {
		t.Errorf("010 parsed as %d, want 10", fields[0].Lo)
	}
	if fields[1].Lo != 9 {
		t.Errorf("09 parsed as %d, want 9", fields[1].Lo)
	}
}

func TestParseDegenerateRange(t *testing.T) {
	m := mustParse(t, "enum E { a = 3..3; };\n")
	f := m.Decls[0].EnumFields[0]
	if f.Lo != 3 || f.Hi != 3 || !f.IsRange {
		t.Fatalf("field = %+v", f)
	}
}

func TestParseReversedRange(t *testing.T) {
	mustFail(t, "enum E { a = 4..2; };\n", diag.SynBadRange)
}

func TestParseStructFieldsAndAttrs(t *testing.T) {
	m := mustParse(t, `struct S {
    plain: uint8;
    [discriminated_by=plain] body: Body;
    [bits=4] nibble: uint8;
    [bytes=2, bits=16] wide: uint16;
};
`)
	fields := m.Decls[0].StructFields
	if len(fields) != 4 {
		t.Fatalf("fields = %d, want 4", len(fields))
	}
	if len(fields[0].Attrs) != 0 {
		t.Errorf("plain field has attrs: %+v", fields[0].Attrs)
	}
	if a := fields[1].Attrs[0]; a.Kind != ast.AttrDiscriminatedBy || a.Field != "plain" {
		t.Errorf("discriminated_by = %+v", a)
	}
	if a := fields[2].Attrs[0]; a.Kind != ast.AttrBits || a.Size != 4 {
		t.Errorf("bits = %+v", a)
	}
	if len(fields[3].Attrs) != 2 || fields[3].Attrs[0].Kind != ast.AttrBytes || fields[3].Attrs[1].Kind != ast.AttrBits {
		t.Errorf("comma-separated attrs = %+v", fields[3].Attrs)
	}
}

func TestParseUnknownAttribute(t *testing.T) {
	d := mustFail(t, "struct S { [aligned=4] f: uint8; };\n", diag.SynUnknownAttribute)
	if !strings.Contains(d.Message, "aligned") {
		t.Fatalf("message does not name the attribute: %s", d.Message)
	}
}

func TestParseUnion(t *testing.T) {
	m := mustParse(t, "union U {\n    0 => a: bit;\n    3..4 => x: uint16;\n};\n")
	fields := m.Decls[0].UnionFields
	if len(fields) != 2 {
		t.Fatalf("fields = %d, want 2", len(fields))
	}
	if fields[0].Lo != 0 || fields[0].IsRange || fields[0].Name != "a" {
		t.Errorf("field a = %+v", fields[0])
	}
	if fields[1].Lo != 3 || fields[1].Hi != 4 || !fields[1].IsRange || fields[1].Name != "x" {
		t.Errorf("field x = %+v", fields[1])
	}
}

func TestParseTypeSuffixesWrapOutward(t *testing.T) {
	m := mustParse(t, "using T = uint32[10][];\n")
	typ := m.Decls[0].Alias
	if typ.Kind != ast.TypeDynamicArray {
		t.Fatalf("outer kind = %v, want dynamic array", typ.Kind)
	}
	inner := *typ.Elem
	if inner.Kind != ast.TypeStaticArray || inner.Len != 10 {
		t.Fatalf("inner = %+v, want static array of 10", inner)
	}
	if inner.Elem.Kind != ast.TypeBuiltin || inner.Elem.Builtin != ast.BuiltinUint32 {
		t.Fatalf("element = %+v, want uint32", inner.Elem)
	}
}

func TestParseBuiltinVersusNamed(t *testing.T) {
	m := mustParse(t, "using A = float64;\nusing B = Float64;\n")
	if m.Decls[0].Alias.Kind != ast.TypeBuiltin {
		t.Errorf("float64 parsed as %v", m.Decls[0].Alias.Kind)
	}
	if m.Decls[1].Alias.Kind != ast.TypeNamed || m.Decls[1].Alias.Name != "Float64" {
		t.Errorf("Float64 parsed as %+v", m.Decls[1].Alias)
	}
}

func TestParseEmptyBodies(t *testing.T) {
	mustFail(t, "enum E { };\n", diag.SynExpectField)
	mustFail(t, "struct S { };\n", diag.SynExpectField)
	mustFail(t, "union U { };\n", diag.SynExpectField)
}

func TestParseEmptyInput(t *testing.T) {
	m := mustParse(t, "")
	if len(m.Decls) != 0 {
		t.Fatalf("decls = %d, want 0", len(m.Decls))
	}
}

func TestParseCommentsBetweenDeclarations(t *testing.T) {
	m := mustParse(t, "# leading\nenum E { a = 1; };\n# between\nusing T = E;\n# trailing\n")
	if len(m.Decls) != 2 {
		t.Fatalf("decls = %d, want 2", len(m.Decls))
	}
}

func TestParseCommentInsideDeclaration(t *testing.T) {
	d := mustFail(t, "enum E {\n    # nope\n    a = 1;\n};\n", diag.SynCommentInDeclaration)
	if !strings.Contains(d.Message, "comments are not allowed") {
		t.Fatalf("message = %s", d.Message)
	}
}

func TestParseUnterminatedStaticArray(t *testing.T) {
	d := mustFail(t, "using T = int32[10;\n", diag.SynUnexpectedToken)
	if !strings.Contains(d.Message, "']'") || !strings.Contains(d.Message, "';'") {
		t.Fatalf("message = %s", d.Message)
	}
	if d.Primary.Start != 18 {
		t.Fatalf("span start = %d, want 18", d.Primary.Start)
	}
}

func TestParseStopsAtFirstError(t *testing.T) {
	module, bag, ok := parse(t, "enum E { a = ; };\nenum F { b = 1; };\n")
	if ok || module != nil {
		t.Fatalf("expected failure with nil module")
	}
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %d, want 1 (no recovery)", bag.Len())
	}
}

func TestParseMissingSemicolonAfterBrace(t *testing.T) {
	mustFail(t, "enum E { a = 1; }\n", diag.SynUnexpectedToken)
}

func TestParseTopLevelGarbage(t *testing.T) {
	d := mustFail(t, "typedef int x;\n", diag.SynExpectDeclaration)
	if !strings.Contains(d.Message, "'enum'") {
		t.Fatalf("message = %s", d.Message)
	}
}

func TestParseDuplicateValuesPermitted(t *testing.T) {
	m := mustParse(t, "enum E {\n    a = 1;\n    b = 1;\n    c = 0..2;\n};\n")
	if len(m.Decls[0].EnumFields) != 3 {
		t.Fatalf("overlapping values rejected")
	}
}
