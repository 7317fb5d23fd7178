package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAddBuildsLineIndex(t *testing.T) {
	fs := NewFileSet()

	id := fs.AddVirtual("a.mek", []byte("a\nb\n"))
	file := fs.Get(id)

	expected := []uint32{1, 3}
	if len(file.LineIdx) != len(expected) {
		t.Fatalf("expected LineIdx length %d, got %d", len(expected), len(file.LineIdx))
	}
	for i, val := range expected {
		if file.LineIdx[i] != val {
			t.Errorf("expected LineIdx[%d] = %d, got %d", i, val, file.LineIdx[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag to be set")
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.mek", []byte("enum E {\n    a = 1;\n};\n"))

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{"start of file", 0, LineCol{Line: 1, Col: 1}},
		{"middle of first line", 5, LineCol{Line: 1, Col: 6}},
		{"newline itself", 8, LineCol{Line: 1, Col: 9}},
		{"start of second line", 9, LineCol{Line: 2, Col: 1}},
		{"field name", 13, LineCol{Line: 2, Col: 5}},
		{"closing brace", 20, LineCol{Line: 3, Col: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
			if start != tt.want {
				t.Errorf("Resolve(%d) = %d:%d, want %d:%d",
					tt.off, start.Line, start.Col, tt.want.Line, tt.want.Col)
			}
		})
	}
}

func TestResolveSingleLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.mek", []byte("using T = u8;"))

	start, _ := fs.Resolve(Span{File: id, Start: 6, End: 7})
	if start.Line != 1 || start.Col != 7 {
		t.Errorf("expected 1:7, got %d:%d", start.Line, start.Col)
	}
}

func TestLoadNormalizesCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.mek")
	if err := os.WriteFile(path, []byte("enum E {\r\n};\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	file := fs.Get(id)
	if string(file.Content) != "enum E {\n};\n" {
		t.Errorf("expected CRLF to be normalized, got %q", string(file.Content))
	}
	if file.Flags&FileNormalizedCRLF == 0 {
		t.Error("expected FileNormalizedCRLF flag to be set")
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.mek", []byte("first\nsecond\nthird"))
	file := fs.Get(id)

	for i, want := range []string{"first", "second", "third"} {
		if got := file.GetLine(uint32(i + 1)); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", i+1, got, want)
		}
	}
	if got := file.GetLine(4); got != "" {
		t.Errorf("GetLine(4) = %q, want empty", got)
	}
	if got := file.GetLine(0); got != "" {
		t.Errorf("GetLine(0) = %q, want empty", got)
	}
}
