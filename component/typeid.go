package component

import (
	"cmp"
	"reflect"
)

// TypeID is an opaque token identifying a type.
//
// Equality, hashing (use as a map key) and the total order of Compare are
// the only operations the resolution passes rely on. Size and alignment
// travel with the token so the allocator plan can size its arena without
// any further type information.
type TypeID struct {
	name  string
	size  uintptr
	align uintptr
}

// TypeOf returns the token of T.
// Named types are identified by their package-qualified name; unnamed
// types (pointers, slices, funcs ...) by their reflect string.
func TypeOf[T any]() TypeID {
	return typeIDOf(reflect.TypeFor[T]())
}

// TypeOfValue returns the token of the dynamic type of v.
// It returns the zero TypeID when v is nil.
func TypeOfValue(v any) TypeID {
	if v == nil {
		return TypeID{}
	}

	return typeIDOf(reflect.TypeOf(v))
}

func typeIDOf(t reflect.Type) TypeID {
	name := t.String()
	if t.Name() != "" && t.PkgPath() != "" {
		name = t.PkgPath() + "." + t.Name()
	}

	return TypeID{name: name, size: t.Size(), align: uintptr(t.Align())}
}

// Named returns a token identified by name alone, with zero size and unit
// alignment. It is meant for tokens whose type exists only as a name
// (declarative manifests, tests).
func Named(name string) TypeID {
	return TypeID{name: name, align: 1}
}

// NamedSized is Named with an explicit size and alignment.
// An alignment of 0 is treated as 1.
func NamedSized(name string, size, align uintptr) TypeID {
	if align == 0 {
		align = 1
	}

	return TypeID{name: name, size: size, align: align}
}

// String returns the type name.
func (t TypeID) String() string {
	if t.name == "" {
		return "<nil>"
	}

	return t.name
}

// Name returns the type name ("" for the zero TypeID).
func (t TypeID) Name() string { return t.name }

// Size returns the size in bytes of one instance.
func (t TypeID) Size() uintptr { return t.size }

// Align returns the required alignment of one instance.
func (t TypeID) Align() uintptr { return t.align }

// IsZero reports whether t is the zero TypeID.
func (t TypeID) IsZero() bool { return t == TypeID{} }

// Less reports whether t orders before o.
func (t TypeID) Less(o TypeID) bool { return Compare(t, o) < 0 }

// Compare orders tokens by name, then size, then alignment.
// It returns -1, 0 or +1 like cmp.Compare.
func Compare(a, b TypeID) int {
	if c := cmp.Compare(a.name, b.name); c != 0 {
		return c
	}
	if c := cmp.Compare(a.size, b.size); c != 0 {
		return c
	}

	return cmp.Compare(a.align, b.align)
}
