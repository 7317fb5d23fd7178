package driver

import (
	"github.com/whiskeyo/meksmith/internal/ast"
	"github.com/whiskeyo/meksmith/internal/diag"
	"github.com/whiskeyo/meksmith/internal/lexer"
	"github.com/whiskeyo/meksmith/internal/parser"
	"github.com/whiskeyo/meksmith/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Module  *ast.Module // nil when parsing failed
	Bag     *diag.Bag
}

// Parse runs the lexer and parser over one file, stopping before dependency
// ordering. The module keeps its source declaration order.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	module, ok := parser.ParseModule(lx, parser.Options{Reporter: reporter})
	if !ok {
		module = nil
	}

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Module:  module,
		Bag:     bag,
	}, nil
}
