package lexer

import (
	"testing"

	"github.com/whiskeyo/meksmith/internal/diag"
	"github.com/whiskeyo/meksmith/internal/source"
	"github.com/whiskeyo/meksmith/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.mek", []byte(src)))
	bag := diag.NewBag(0)
	lx := New(file, Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return tokens, bag
		}
		tokens = append(tokens, tok)
	}
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestLexDeclarationShape(t *testing.T) {
	tokens, bag := lexAll(t, "enum E {\n    a = 1;\n};\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics")
	}
	want := []token.Kind{
		token.KwEnum, token.Ident, token.LBrace,
		token.Ident, token.Assign, token.IntLit, token.Semicolon,
		token.RBrace, token.Semicolon,
	}
	got := kinds(tokens)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexKeywordsAreCaseSensitive(t *testing.T) {
	tokens, _ := lexAll(t, "enum Enum struct Struct union using Using")
	want := []token.Kind{
		token.KwEnum, token.Ident, token.KwStruct, token.Ident,
		token.KwUnion, token.KwUsing, token.Ident,
	}
	got := kinds(tokens)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexNumberBases(t *testing.T) {
	tests := []struct {
		src  string
		text string
	}{
		{"42", "42"},
		{"0", "0"},
		{"0x2A", "0x2A"},
		{"0XFF", "0XFF"},
		{"0b1010", "0b1010"},
		{"007", "007"},
	}
	for _, tt := range tests {
		tokens, bag := lexAll(t, tt.src)
		if bag.HasErrors() {
			t.Errorf("%q: unexpected diagnostics", tt.src)
			continue
		}
		if len(tokens) != 1 || tokens[0].Kind != token.IntLit || tokens[0].Text != tt.text {
			t.Errorf("%q: got %v", tt.src, tokens)
		}
	}
}

func TestLexBadNumberPrefix(t *testing.T) {
	for _, src := range []string{"0x", "0b", "0xg", "0b2"} {
		tokens, bag := lexAll(t, src)
		if len(tokens) == 0 || tokens[0].Kind != token.Invalid {
			t.Errorf("%q: first token = %v, want Invalid", src, tokens)
			continue
		}
		d, ok := bag.FirstError()
		if !ok || d.Code != diag.LexBadNumber {
			t.Errorf("%q: diagnostic = %v, want LexBadNumber", src, d)
		}
	}
}

func TestLexPunctuationLongestMatch(t *testing.T) {
	tokens, bag := lexAll(t, "=> = .. 0..1")
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics")
	}
	want := []token.Kind{
		token.FatArrow, token.Assign, token.DotDot,
		token.IntLit, token.DotDot, token.IntLit,
	}
	got := kinds(tokens)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexSingleDotIsInvalid(t *testing.T) {
	tokens, bag := lexAll(t, ".")
	if len(tokens) != 1 || tokens[0].Kind != token.Invalid {
		t.Fatalf("got %v, want a single Invalid token", tokens)
	}
	if d, ok := bag.FirstError(); !ok || d.Code != diag.LexUnknownChar {
		t.Fatalf("diagnostic = %v, want LexUnknownChar", d)
	}
}

func TestLexUnknownCharacter(t *testing.T) {
	tokens, bag := lexAll(t, "@")
	if len(tokens) != 1 || tokens[0].Kind != token.Invalid {
		t.Fatalf("got %v, want a single Invalid token", tokens)
	}
	d, ok := bag.FirstError()
	if !ok || d.Code != diag.LexUnknownChar {
		t.Fatalf("diagnostic = %v, want LexUnknownChar", d)
	}
}

func TestLexCommentToEndOfLine(t *testing.T) {
	tokens, _ := lexAll(t, "# a comment\nenum")
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want 2", len(tokens))
	}
	if tokens[0].Kind != token.Comment || tokens[0].Text != "# a comment" {
		t.Fatalf("comment token = %+v", tokens[0])
	}
	if tokens[1].Kind != token.KwEnum {
		t.Fatalf("token after comment = %s, want KwEnum", tokens[1].Kind)
	}
}

func TestLexEOFIsSticky(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.mek", []byte("a")))
	lx := New(file, Options{})
	lx.Next()
	for n := 0; n < 3; n++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("got %s after EOF", tok.Kind)
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.mek", []byte("enum E")))
	lx := New(file, Options{})

	if tok := lx.Peek(); tok.Kind != token.KwEnum {
		t.Fatalf("Peek = %s", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.KwEnum {
		t.Fatalf("Next after Peek = %s", tok.Kind)
	}
	if tok := lx.Next(); tok.Kind != token.Ident || tok.Text != "E" {
		t.Fatalf("second Next = %+v", tok)
	}
}

func TestLexSpans(t *testing.T) {
	tokens, _ := lexAll(t, "using T = int32;")
	// "T" starts at byte 6
	if tokens[1].Span.Start != 6 || tokens[1].Span.End != 7 {
		t.Fatalf("span of T = %v", tokens[1].Span)
	}
	// "int32" starts at byte 10
	if tokens[3].Span.Start != 10 || tokens[3].Span.End != 15 {
		t.Fatalf("span of int32 = %v", tokens[3].Span)
	}
}
