// Package driver orchestrates the compilation pipeline: file loading,
// lexing, parsing, dependency ordering, and code generation. Commands and
// the public facade both sit on top of it.
package driver

import (
	"fmt"

	"github.com/whiskeyo/meksmith/internal/ast"
	"github.com/whiskeyo/meksmith/internal/diag"
	"github.com/whiskeyo/meksmith/internal/lexer"
	"github.com/whiskeyo/meksmith/internal/parser"
	"github.com/whiskeyo/meksmith/internal/resolve"
	"github.com/whiskeyo/meksmith/internal/smith"
	"github.com/whiskeyo/meksmith/internal/source"
)

// CompileOptions configures one compilation.
type CompileOptions struct {
	// Target selects the code generation backend. Empty means "c".
	Target string
	// MaxDiagnostics caps the bag; zero means unlimited.
	MaxDiagnostics int
	// Cache, when non-nil, short-circuits generation for unchanged inputs.
	Cache *DiskCache
}

// CompileResult carries everything a caller may want after a compilation.
// Module and Output are populated only when Bag has no errors.
type CompileResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Module  *ast.Module // dependency-ordered
	Output  string
	Bag     *diag.Bag
	Cached  bool
}

func (o CompileOptions) target() string {
	if o.Target == "" {
		return "c"
	}
	return o.Target
}

// CompileFile compiles one schema file from disk. The returned error covers
// I/O and configuration failures only; schema errors land in the bag.
func CompileFile(path string, opts CompileOptions) (*CompileResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return compile(fs, fileID, opts)
}

// CompileSource compiles schema text held in memory. The name labels the
// input in diagnostics.
func CompileSource(name string, src []byte, opts CompileOptions) (*CompileResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return compile(fs, fileID, opts)
}

func compile(fs *source.FileSet, fileID source.FileID, opts CompileOptions) (*CompileResult, error) {
	backend, ok := smith.ForTarget(opts.target())
	if !ok {
		return nil, fmt.Errorf("unknown target %q (have %v)", opts.target(), smith.Targets())
	}

	file := fs.Get(fileID)
	bag := diag.NewBag(opts.MaxDiagnostics)
	res := &CompileResult{FileSet: fs, FileID: fileID, Bag: bag}

	key := cacheKey(file.Hash, backend.Target())
	if opts.Cache != nil {
		var payload CachePayload
		if hit, err := opts.Cache.Get(key, &payload); err == nil && hit {
			res.Output = payload.Output
			res.Cached = true
			return res, nil
		}
	}

	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	module, ok := parser.ParseModule(lx, parser.Options{Reporter: reporter})
	if !ok {
		return res, nil
	}

	ordered, err := resolve.Order(module, resolve.Options{Reporter: reporter})
	if err != nil {
		return res, nil
	}

	res.Module = ordered
	res.Output = backend.Generate(ordered)

	if opts.Cache != nil {
		// best effort, a failed write only costs a recompilation later
		_ = opts.Cache.Put(key, &CachePayload{
			Schema: cacheSchemaVersion,
			Target: backend.Target(),
			Output: res.Output,
		})
	}
	return res, nil
}

// Check runs the pipeline through dependency ordering without generating
// code. It reports schema validity.
func Check(path string, maxDiagnostics int) (*CompileResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	res := &CompileResult{FileSet: fs, FileID: fileID, Bag: bag}

	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	module, ok := parser.ParseModule(lx, parser.Options{Reporter: reporter})
	if !ok {
		return res, nil
	}
	if ordered, err := resolve.Order(module, resolve.Options{Reporter: reporter}); err == nil {
		res.Module = ordered
	}
	return res, nil
}
