package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/whiskeyo/meksmith/internal/diag"
)

const crcSchema = `# checksummed frame
struct Frame {
    kind: Kind;
    payload: byte[];
};

enum Kind {
    data = 1;
    ack = 2;
};
`

func writeSchema(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestCompileFileOrdersDependencies(t *testing.T) {
	path := writeSchema(t, "frame.mek", crcSchema)

	res, err := CompileFile(path, CompileOptions{})
	if err != nil {
		t.Fatalf("CompileFile: %v", err)
	}
	if res.Bag.HasErrors() {
		d, _ := res.Bag.FirstError()
		t.Fatalf("unexpected diagnostics: %s", d.Message)
	}

	// Kind is declared after Frame but must be emitted first.
	kindAt := strings.Index(res.Output, "} Kind;")
	frameAt := strings.Index(res.Output, "} Frame;")
	if kindAt < 0 || frameAt < 0 {
		t.Fatalf("missing typedefs in output:\n%s", res.Output)
	}
	if kindAt > frameAt {
		t.Fatalf("Kind emitted after Frame:\n%s", res.Output)
	}
}

func TestCompileSourceSyntaxError(t *testing.T) {
	res, err := CompileSource("bad.mek", []byte("using T = int32[10;\n"), CompileOptions{})
	if err != nil {
		t.Fatalf("CompileSource: %v", err)
	}
	if !res.Bag.HasErrors() {
		t.Fatalf("expected a syntax diagnostic")
	}
	if res.Output != "" {
		t.Fatalf("output produced despite errors:\n%s", res.Output)
	}
	d, _ := res.Bag.FirstError()
	if d.Code != diag.SynUnexpectedToken {
		t.Fatalf("code = %s, want %s", d.Code.ID(), diag.SynUnexpectedToken.ID())
	}
}

func TestCompileUnknownTarget(t *testing.T) {
	_, err := CompileSource("x.mek", []byte("enum E { a = 1; };\n"), CompileOptions{Target: "cobol"})
	if err == nil || !strings.Contains(err.Error(), "unknown target") {
		t.Fatalf("err = %v, want unknown target", err)
	}
}

func TestCompileFileMissing(t *testing.T) {
	_, err := CompileFile(filepath.Join(t.TempDir(), "absent.mek"), CompileOptions{})
	if err == nil {
		t.Fatalf("expected an I/O error for a missing file")
	}
}

func TestCompileWithCache(t *testing.T) {
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	path := writeSchema(t, "frame.mek", crcSchema)
	opts := CompileOptions{Cache: cache}

	first, err := CompileFile(path, opts)
	if err != nil {
		t.Fatalf("first compile: %v", err)
	}
	if first.Cached {
		t.Fatalf("first compile reported a cache hit")
	}

	second, err := CompileFile(path, opts)
	if err != nil {
		t.Fatalf("second compile: %v", err)
	}
	if !second.Cached {
		t.Fatalf("second compile missed the cache")
	}
	if second.Output != first.Output {
		t.Fatalf("cached output differs:\n%s\nvs:\n%s", second.Output, first.Output)
	}
}

func TestCheckReportsCycle(t *testing.T) {
	path := writeSchema(t, "cycle.mek", "struct A { b: B; };\nstruct B { a: A; };\n")

	res, err := Check(path, 0)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	d, ok := res.Bag.FirstError()
	if !ok {
		t.Fatalf("expected a cycle diagnostic")
	}
	if d.Code != diag.ResCycle {
		t.Fatalf("code = %s, want %s", d.Code.ID(), diag.ResCycle.ID())
	}
}

func TestCompileAllKeepsInputOrder(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "a.mek")
	bad := filepath.Join(dir, "b.mek")
	if err := os.WriteFile(good, []byte("enum E { a = 1; };\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("wat\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	results, err := CompileAll(context.Background(), []string{good, bad}, CompileOptions{}, 2)
	if err != nil {
		t.Fatalf("CompileAll: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].Path != good || results[1].Path != bad {
		t.Fatalf("results out of order: %s, %s", results[0].Path, results[1].Path)
	}
	if results[0].Result.Bag.HasErrors() {
		t.Fatalf("good file produced diagnostics")
	}
	if !results[1].Result.Bag.HasErrors() {
		t.Fatalf("bad file produced no diagnostics")
	}
}

func TestListSchemaFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"z.mek", "a.mek", "skip.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("enum E { a = 1; };\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	files, err := ListSchemaFiles(dir)
	if err != nil {
		t.Fatalf("ListSchemaFiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("len(files) = %d, want 2", len(files))
	}
	if filepath.Base(files[0]) != "a.mek" || filepath.Base(files[1]) != "z.mek" {
		t.Fatalf("files not sorted: %v", files)
	}
}
