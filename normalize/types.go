package normalize

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/injgraph/component"
	"github.com/katalvlaran/injgraph/internal/diag"
)

// ErrInconsistentBinding indicates a type bound more than once with
// different recipes.
var ErrInconsistentBinding = diag.NewError("type bound more than once with different bindings")

// ConflictError reports a type bound more than once with different recipes.
type ConflictError struct {
	Type      component.TypeID
	Existing  component.BindingData
	Duplicate component.BindingData
}

// Error explains the conflict and how it slipped past signature checking.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("Fatal injection error: the type %s was provided more than once, with different bindings.\n"+
		"This was not caught earlier because at least one of the involved components bound this type but didn't expose it in the component signature.\n"+
		"If the type has a default constructor or is auto-injected, this problem may arise even if this type is bound by only one component (and then hidden), if the type is auto-injected in another component.\n"+
		"If the source of the problem is unclear, try exposing this type in all the component signatures where it's bound; if no component hides it this can't happen.",
		e.Type)
}

// Unwrap makes errors.Is(err, ErrInconsistentBinding) hold.
func (e *ConflictError) Unwrap() error { return ErrInconsistentBinding }

// BindingCompressionInfo records one applied compression.
type BindingCompressionInfo struct {
	// InterfaceID is the type the class was folded into.
	InterfaceID component.TypeID

	// InterfaceBinding is the interface's binding before compression.
	InterfaceBinding component.BindingData

	// ClassBinding is the class's binding, removed by compression.
	ClassBinding component.BindingData
}

// BindingCompressionInfoMap maps each compressed-away class type to its record.
type BindingCompressionInfoMap map[component.TypeID]BindingCompressionInfo

// Option configures NormalizeBindings.
type Option func(*Options)

// Options holds the normalizer settings.
type Options struct {
	// Logger receives debug-level compression decisions. Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
