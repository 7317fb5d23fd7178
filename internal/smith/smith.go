// Package smith holds the code generation backends. A smith lowers a
// dependency-ordered module into one target language's type declarations.
package smith

import (
	"sort"

	"github.com/whiskeyo/meksmith/internal/ast"
)

// Smith is one code generation backend. Generate is a pure fold over the
// module: identical input always yields byte-identical output. Generating
// from an unordered module is allowed but may produce forward references the
// target language cannot resolve; callers run resolve.Order first.
type Smith interface {
	Target() string
	Generate(m *ast.Module) string
}

var backends = map[string]Smith{
	"c": CSmith{},
}

// ForTarget returns the backend for a target name, if registered.
func ForTarget(name string) (Smith, bool) {
	s, ok := backends[name]
	return s, ok
}

// Targets returns the registered backend names.
func Targets() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
