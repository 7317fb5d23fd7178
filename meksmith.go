// Package meksmith compiles protocol schema text into target-language type
// declarations. The schema language describes binary record layouts:
// enumerations, structures, discriminated unions, type aliases, and
// fixed/variable-length arrays. The reference backend emits C.
//
// The package exposes two entry points, Compile and CompileFile. Both are
// synchronous and share no mutable state, so concurrent calls need no
// locking. Everything else lives under internal/.
package meksmith

import (
	"fmt"

	"github.com/whiskeyo/meksmith/internal/diag"
	"github.com/whiskeyo/meksmith/internal/driver"
)

// ErrorKind classifies a compilation failure.
type ErrorKind uint8

const (
	// ErrSyntax covers lexical and grammatical failures.
	ErrSyntax ErrorKind = iota
	// ErrCycle means a declaration transitively depends on itself.
	ErrCycle
	// ErrIO means the schema file could not be read. Raised only by
	// CompileFile.
	ErrIO
)

func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax"
	case ErrCycle:
		return "cycle"
	case ErrIO:
		return "io"
	}
	return "unknown"
}

// Diagnostic is the error type returned by Compile and CompileFile. Line and
// Col are 1-based and zero when no location is derivable (I/O failures).
type Diagnostic struct {
	Kind    ErrorKind
	Message string
	Path    string
	Line    uint32
	Col     uint32
}

func (d *Diagnostic) Error() string {
	if d.Line == 0 {
		if d.Path != "" {
			return fmt.Sprintf("%s: %s", d.Path, d.Message)
		}
		return d.Message
	}
	if d.Path != "" {
		return fmt.Sprintf("%s:%d:%d: %s", d.Path, d.Line, d.Col, d.Message)
	}
	return fmt.Sprintf("%d:%d: %s", d.Line, d.Col, d.Message)
}

// Compile parses, orders, and lowers one schema held in memory. On success
// it returns the full generated text; on failure it returns a *Diagnostic
// and no partial output.
func Compile(source string) (string, error) {
	res, err := driver.CompileSource("<input>", []byte(source), driver.CompileOptions{})
	if err != nil {
		return "", &Diagnostic{Kind: ErrIO, Message: err.Error()}
	}
	return finish(res, "")
}

// CompileFile reads path and compiles it like Compile. An unreadable path
// yields a *Diagnostic of kind ErrIO wrapping the filesystem failure.
func CompileFile(path string) (string, error) {
	res, err := driver.CompileFile(path, driver.CompileOptions{})
	if err != nil {
		return "", &Diagnostic{Kind: ErrIO, Message: err.Error(), Path: path}
	}
	return finish(res, path)
}

func finish(res *driver.CompileResult, path string) (string, error) {
	d, found := res.Bag.FirstError()
	if !found {
		return res.Output, nil
	}

	out := &Diagnostic{
		Kind:    kindForCode(d.Code),
		Message: d.Message,
		Path:    path,
	}
	if !d.Primary.Empty() || d.Primary.Start > 0 {
		start, _ := res.FileSet.Resolve(d.Primary)
		out.Line = start.Line
		out.Col = start.Col
	}
	return "", out
}

func kindForCode(code diag.Code) ErrorKind {
	switch {
	case code >= diag.IOReadFailed:
		return ErrIO
	case code >= diag.ResInfo:
		return ErrCycle
	default:
		return ErrSyntax
	}
}
