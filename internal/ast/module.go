package ast

// Module is an ordered sequence of declarations, either as written in source
// (pre-resolution) or dependency-ordered (post-resolution). Modules are
// treated as immutable once produced: every pipeline stage consumes one
// Module and produces a new one.
type Module struct {
	Decls []Decl
}

// Lookup returns the declaration with the given name, if present. Names are
// matched by exact text.
func (m *Module) Lookup(name string) (*Decl, bool) {
	for i := range m.Decls {
		if m.Decls[i].Name == name {
			return &m.Decls[i], true
		}
	}
	return nil, false
}
