// Package resolve orders a module's declarations so that every declaration
// appears after the declarations it structurally references.
package resolve

import (
	"fmt"

	"github.com/whiskeyo/meksmith/internal/ast"
	"github.com/whiskeyo/meksmith/internal/diag"
)

// CycleError reports that a declaration transitively depends on itself. Name
// is the first declaration at which the self-referential path was closed,
// following the stable traversal order.
type CycleError struct {
	Name string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("type %q transitively depends on itself", e.Name)
}

type Options struct {
	Reporter diag.Reporter // may be nil
}

type color uint8

const (
	white color = iota // unvisited
	grey               // in progress
	black              // done
)

// Order produces a new module whose declarations are dependency-ordered:
// dependencies first, dependents after. Declarations with no dependency
// relationship keep their relative source order. Referenced names with no
// matching declaration are leaves; unresolved-symbol checking is not the
// resolver's job. Running Order on an already-ordered module reproduces the
// same order.
func Order(m *ast.Module, opts Options) (*ast.Module, error) {
	byName := make(map[string]int, len(m.Decls))
	for i := range m.Decls {
		name := m.Decls[i].Name
		if _, dup := byName[name]; !dup {
			byName[name] = i
		}
	}

	colors := make([]color, len(m.Decls))
	out := &ast.Module{Decls: make([]ast.Decl, 0, len(m.Decls))}

	var visit func(i int) error
	visit = func(i int) error {
		colors[i] = grey
		for _, ref := range m.Decls[i].References() {
			j, ok := byName[ref]
			if !ok {
				continue // undeclared names are leaves
			}
			switch colors[j] {
			case grey:
				decl := &m.Decls[j]
				if opts.Reporter != nil {
					opts.Reporter.Report(diag.ResCycle, diag.SevError, decl.NameSpan,
						fmt.Sprintf("type %q transitively depends on itself", decl.Name),
						[]diag.Note{{Span: m.Decls[i].NameSpan,
							Msg: fmt.Sprintf("cycle closed through %q", m.Decls[i].Name)}})
				}
				return &CycleError{Name: decl.Name}
			case white:
				if err := visit(j); err != nil {
					return err
				}
			}
		}
		colors[i] = black
		out.Decls = append(out.Decls, m.Decls[i])
		return nil
	}

	for i := range m.Decls {
		if colors[i] != white {
			continue
		}
		if err := visit(i); err != nil {
			return nil, err
		}
	}
	return out, nil
}
