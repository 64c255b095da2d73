package component

import (
	"reflect"
	"slices"
)

// Factory builds one instance from the already constructed instances of
// its dependencies, given in dependency-list order. It is opaque to the
// resolution passes; only its identity (code pointer) is ever compared.
type Factory func(args []any) any

// Binding is one raw (type, recipe) declaration.
type Binding struct {
	Type TypeID
	Data BindingData
}

// BindingData describes how to obtain one instance of a type.
//
// It is either "created" (the object was supplied from outside and needs no
// construction nor allocation) or a recipe: an ordered dependency list plus
// a factory, flagged with whether the engine must allocate the instance.
type BindingData struct {
	created         bool
	object          any
	deps            []TypeID
	create          Factory
	needsAllocation bool
}

// Created returns the binding of an already constructed object.
func Created(object any) BindingData {
	return BindingData{created: true, object: object}
}

// NewBinding returns a recipe binding. deps is kept in order; it is not
// copied, callers must not mutate it afterwards.
func NewBinding(create Factory, deps []TypeID, needsAllocation bool) BindingData {
	return BindingData{deps: deps, create: create, needsAllocation: needsAllocation}
}

// IsCreated reports whether the binding holds an already constructed object.
func (b BindingData) IsCreated() bool { return b.created }

// Object returns the constructed object of a created binding, nil otherwise.
func (b BindingData) Object() any { return b.object }

// Deps returns the dependency list of a recipe binding, nil for created ones.
func (b BindingData) Deps() []TypeID { return b.deps }

// Create returns the factory of a recipe binding, nil for created ones.
func (b BindingData) Create() Factory { return b.create }

// NeedsAllocation reports whether the engine must allocate the instance.
// Created bindings are always externally allocated.
func (b BindingData) NeedsAllocation() bool {
	return !b.created && b.needsAllocation
}

// DependsOn reports whether t is in the dependency list.
func (b BindingData) DependsOn(t TypeID) bool {
	return slices.Contains(b.deps, t)
}

// Equal reports whether b and o are the same recipe: same kind, same
// object identity, same dependencies in the same order, same factory and
// same allocation flag.
func (b BindingData) Equal(o BindingData) bool {
	if b.created != o.created {
		return false
	}
	if b.created {
		return sameObject(b.object, o.object)
	}

	return b.needsAllocation == o.needsAllocation &&
		slices.Equal(b.deps, o.deps) &&
		sameFunc(b.create, o.create)
}

// sameFunc compares two funcs by code pointer. Closures built from the same
// literal share a code pointer, so captured state is not part of identity.
func sameFunc(a, b any) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() || va.IsNil() || vb.IsNil() {
		return (!va.IsValid() || va.IsNil()) && (!vb.IsValid() || vb.IsNil())
	}

	return va.Type() == vb.Type() && va.Pointer() == vb.Pointer()
}

// sameObject compares reference-like values by address and comparable
// values with ==. Non-comparable values are never equal.
func sameObject(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	switch ta.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Slice:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	if !ta.Comparable() {
		return false
	}

	return a == b
}
