package component

import (
	"fmt"
	"hash/maphash"
	"reflect"
	"runtime"
	"strings"
)

// LazyComponent is a deferred component installer.
//
// Two descriptors that wrap the same installer with equal arguments are the
// same component: Hash and Equal must be consistent with that, and must not
// depend on the descriptor's address.
type LazyComponent interface {
	// FunTypeID identifies the installer function, for diagnostics.
	FunTypeID() TypeID

	// Hash returns a content hash consistent with Equal.
	Hash() uint64

	// Equal reports whether other denotes the same component.
	Equal(other LazyComponent) bool

	// AddBindings adds the component's bindings, multibindings, compression
	// candidates and nested lazy components to s.
	AddBindings(s *Storage)
}

var lazySeed = maphash.MakeSeed()

// lazyKey is the content identity of a lazyComponent.
type lazyKey[A comparable] struct {
	pc   uintptr
	args A
}

type lazyComponent[A comparable] struct {
	key     lazyKey[A]
	name    string
	hasArgs bool
	install func(*Storage, A)
}

// Lazy wraps an installer without arguments.
//
// The installer is identified by its code pointer: pass a top-level function
// (or method value of a package-level func), not a closure capturing
// per-call state. Use LazyWith to parameterise an installer.
func Lazy(fn func(*Storage)) LazyComponent {
	c := &lazyComponent[struct{}]{
		key:     lazyKey[struct{}]{pc: funcPC(fn)},
		name:    funcName(fn),
		install: func(s *Storage, _ struct{}) { fn(s) },
	}

	return c
}

// LazyWith wraps an installer together with its arguments. The pair
// (installer, args) is the component identity, so args must be comparable.
//
// A compiles as comparable when it is (or contains) an interface type even
// if the value it holds is not. LazyWith panics on such arguments, since
// they could not be hashed when the component is expanded.
func LazyWith[A comparable](fn func(*Storage, A), args A) LazyComponent {
	if !reflect.ValueOf(&args).Elem().Comparable() {
		panic(fmt.Sprintf("component: LazyWith arguments of type %T are not comparable", args))
	}

	return &lazyComponent[A]{
		key:     lazyKey[A]{pc: funcPC(fn), args: args},
		name:    funcName(fn),
		hasArgs: true,
		install: fn,
	}
}

func (c *lazyComponent[A]) FunTypeID() TypeID { return Named(c.name) }

func (c *lazyComponent[A]) Hash() uint64 { return maphash.Comparable(lazySeed, c.key) }

func (c *lazyComponent[A]) Equal(other LazyComponent) bool {
	o, ok := other.(*lazyComponent[A])

	return ok && o.key == c.key
}

func (c *lazyComponent[A]) AddBindings(s *Storage) { c.install(s, c.key.args) }

// String renders the installer name, followed by its arguments if any.
func (c *lazyComponent[A]) String() string {
	if !c.hasArgs {
		return c.name
	}

	return fmt.Sprintf("%s(%v)", c.name, c.key.args)
}

func funcPC(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// funcName returns the fully qualified name of fn, without the "-fm"
// suffix the runtime appends to method values.
func funcName(fn any) string {
	f := runtime.FuncForPC(funcPC(fn))
	if f == nil {
		return fmt.Sprintf("func@%#x", funcPC(fn))
	}

	return strings.TrimSuffix(f.Name(), "-fm")
}

// Describe renders a lazy component for installation traces: its String
// method when it has one, its installer token otherwise.
func Describe(c LazyComponent) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}

	return c.FunTypeID().String()
}
