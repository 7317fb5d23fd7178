package ast

import (
	"github.com/whiskeyo/meksmith/internal/source"
)

// DeclKind discriminates top-level declarations, the unit of dependency
// ordering.
type DeclKind uint8

const (
	DeclEnum DeclKind = iota
	DeclStruct
	DeclUnion
	DeclAlias
)

func (k DeclKind) String() string {
	switch k {
	case DeclEnum:
		return "enum"
	case DeclStruct:
		return "struct"
	case DeclUnion:
		return "union"
	case DeclAlias:
		return "using"
	}
	return "unknown"
}

// Decl is one top-level named definition. Exactly one of the per-kind field
// groups is populated, selected by Kind.
type Decl struct {
	Kind     DeclKind
	Name     string
	NameSpan source.Span
	Span     source.Span

	EnumFields   []EnumField   // DeclEnum
	StructFields []StructField // DeclStruct
	UnionFields  []UnionField  // DeclUnion
	Alias        TypeRef       // DeclAlias
}

// References returns the user-declared names this declaration structurally
// depends on, in field order, without duplicates. Builtin scalars contribute
// no edges; attributes are metadata, not structure.
func (d *Decl) References() []string {
	var names []string
	seen := make(map[string]struct{})
	add := func(t TypeRef) {
		if name, ok := t.NamedRoot(); ok {
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}
	}

	switch d.Kind {
	case DeclEnum:
		// enumerations hold plain values, no type references
	case DeclStruct:
		for i := range d.StructFields {
			add(d.StructFields[i].Type)
		}
	case DeclUnion:
		for i := range d.UnionFields {
			add(d.UnionFields[i].Type)
		}
	case DeclAlias:
		add(d.Alias)
	}
	return names
}
