package ast

import (
	"fmt"
)

// TypeKind discriminates the TypeRef variants.
type TypeKind uint8

const (
	// TypeBuiltin is a fixed scalar kind.
	TypeBuiltin TypeKind = iota
	// TypeNamed references a user-declared name, resolved later against the
	// declaration table.
	TypeNamed
	// TypeStaticArray wraps an element type with a compile-time-known count.
	TypeStaticArray
	// TypeDynamicArray wraps an element type with no compile-time count.
	TypeDynamicArray
)

// TypeRef is the closed recursive type grammar: a builtin scalar, a reference
// to a declared name, or a static/dynamic array of an inner TypeRef.
type TypeRef struct {
	Kind    TypeKind
	Builtin Builtin  // TypeBuiltin
	Name    string   // TypeNamed
	Elem    *TypeRef // TypeStaticArray, TypeDynamicArray
	Len     uint64   // TypeStaticArray
}

// BuiltinType constructs a scalar TypeRef.
func BuiltinType(b Builtin) TypeRef {
	return TypeRef{Kind: TypeBuiltin, Builtin: b}
}

// NamedType constructs a reference to a user-declared name.
func NamedType(name string) TypeRef {
	return TypeRef{Kind: TypeNamed, Name: name}
}

// StaticArrayOf wraps elem into a static array of n elements.
func StaticArrayOf(elem TypeRef, n uint64) TypeRef {
	return TypeRef{Kind: TypeStaticArray, Elem: &elem, Len: n}
}

// DynamicArrayOf wraps elem into a dynamic array.
func DynamicArrayOf(elem TypeRef) TypeRef {
	return TypeRef{Kind: TypeDynamicArray, Elem: &elem}
}

// NamedRoot returns the innermost referenced declaration name, recursing
// through array wrappers. Builtin scalars contribute no name.
func (t TypeRef) NamedRoot() (string, bool) {
	switch t.Kind {
	case TypeBuiltin:
		return "", false
	case TypeNamed:
		return t.Name, true
	case TypeStaticArray, TypeDynamicArray:
		return t.Elem.NamedRoot()
	}
	return "", false
}

func (t TypeRef) String() string {
	switch t.Kind {
	case TypeBuiltin:
		return t.Builtin.String()
	case TypeNamed:
		return t.Name
	case TypeStaticArray:
		return fmt.Sprintf("%s[%d]", t.Elem.String(), t.Len)
	case TypeDynamicArray:
		return t.Elem.String() + "[]"
	}
	return "unknown"
}
