package ast

import (
	"github.com/whiskeyo/meksmith/internal/source"
)

// AttrKind discriminates field attributes.
type AttrKind uint8

const (
	// AttrDiscriminatedBy names the sibling field whose value selects among
	// union variants.
	AttrDiscriminatedBy AttrKind = iota
	// AttrBits declares the field size in bits.
	AttrBits
	// AttrBytes declares the field size in bytes.
	AttrBytes
)

// Attr is advisory metadata attached to a structure field. Backends may
// ignore attributes they do not implement but must not reject a field for
// carrying one.
type Attr struct {
	Kind  AttrKind
	Field string // AttrDiscriminatedBy
	Size  uint64 // AttrBits, AttrBytes
	Span  source.Span
}
