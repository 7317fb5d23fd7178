package ast

import (
	"github.com/whiskeyo/meksmith/internal/source"
)

// EnumField is a named value or a named inclusive range of values. A range
// with Lo == Hi degenerates to a single value in code generation. Duplicate
// or overlapping values across one enumeration are permitted.
type EnumField struct {
	Name    string
	Lo      uint64
	Hi      uint64 // equals Lo for single values
	IsRange bool
	Span    source.Span
}

// StructField is one member of a structure. Field order is layout order and
// is preserved end-to-end.
type StructField struct {
	Name  string
	Type  TypeRef
	Attrs []Attr
	Span  source.Span
}

// UnionField maps a discriminator value or inclusive discriminator range to
// a named member. A range materializes one member per discriminator value in
// code generation.
type UnionField struct {
	Name    string
	Type    TypeRef
	Lo      uint64
	Hi      uint64 // equals Lo for single discriminators
	IsRange bool
	Span    source.Span
}
