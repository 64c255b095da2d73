package injgraph

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/injgraph/allocator"
	"github.com/katalvlaran/injgraph/component"
	"github.com/katalvlaran/injgraph/depgraph"
	"github.com/katalvlaran/injgraph/expand"
	"github.com/katalvlaran/injgraph/multibind"
	"github.com/katalvlaran/injgraph/normalize"
)

// Result is the output of one resolution: everything the construction stage
// needs, handed over by value.
type Result struct {
	// Bindings is the normalized, compression-applied binding table.
	Bindings []component.Binding

	// Multibindings holds the merged multibinding collections.
	Multibindings multibind.Table

	// Allocator is the allocation plan for bindings and multibindings.
	Allocator *allocator.Data

	// Compressions records every applied binding compression, by class type.
	Compressions normalize.BindingCompressionInfoMap

	// ConstructionOrder lists the bound types dependencies-first.
	// It is nil when the dependency check is disabled.
	ConstructionOrder []component.TypeID

	// Graph is the dependency graph of Bindings, nil when the dependency
	// check is disabled.
	Graph *depgraph.Graph
}

// Binding returns the binding of t in the table.
func (r *Result) Binding(t component.TypeID) (component.BindingData, bool) {
	for _, b := range r.Bindings {
		if b.Type == t {
			return b.Data, true
		}
	}

	return component.BindingData{}, false
}

// Option configures Resolve.
type Option func(*Options)

// Options holds the pipeline settings.
type Options struct {
	// Logger is passed to every pass. Defaults to a no-op logger.
	Logger *zap.Logger

	// DependencyCheck enables the construction order / dependency loop
	// check. Default true.
	DependencyCheck bool
}

// DefaultOptions returns the default pipeline settings.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop(), DependencyCheck: true}
}

// WithLogger sets the logger of every pass. A nil logger keeps the default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithoutDependencyCheck skips the construction order computation.
func WithoutDependencyCheck() Option {
	return func(o *Options) { o.DependencyCheck = false }
}

// Resolve expands the lazy components of s, then normalizes, compresses and
// merges everything s declares. s is consumed: do not reuse it.
//
// Errors (all fatal configuration errors):
//
//   - expand.ErrInstallationLoop         a lazy component installs itself.
//   - normalize.ErrInconsistentBinding   a type is bound twice differently.
//   - depgraph.ErrDependencyLoop         a bound type needs itself.
func Resolve(s *component.Storage, opts ...Option) (*Result, error) {
	// 1. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	log := o.Logger

	// 2. Flatten the lazy components
	if err := expand.ExpandLazyComponents(s, s.Toplevel, expand.WithLogger(log)); err != nil {
		return nil, err
	}
	log.Debug("expanded components",
		zap.Stringer("toplevel", s.Toplevel),
		zap.Int("bindings", len(s.Bindings)),
		zap.Int("multibindings", len(s.Multibindings)),
		zap.Int("compressions", len(s.CompressedBindings)))

	// 3. Normalize and compress the bindings
	alloc := allocator.New()
	bindings, compressions, err := normalize.NormalizeBindings(
		s.Bindings, alloc, s.CompressedBindings, s.Multibindings, s.Exposed,
		normalize.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	// 4. Merge the multibindings
	table := multibind.Table{}
	if err = multibind.AddMultibindings(table, alloc, s.Multibindings, multibind.WithLogger(log)); err != nil {
		return nil, err
	}

	res := &Result{
		Bindings:      bindings,
		Multibindings: table,
		Allocator:     alloc,
		Compressions:  compressions,
	}

	// 5. Construction order
	if o.DependencyCheck {
		g := depgraph.Build(bindings)
		if res.ConstructionOrder, err = g.TopologicalOrder(); err != nil {
			for _, c := range g.Cycles() {
				log.Debug("dependency loop", zap.Stringers("path", c))
			}

			return nil, err
		}
		res.Graph = g
		if unbound := g.Unbound(); len(unbound) > 0 {
			log.Debug("dependencies provided outside the binding table", zap.Stringers("types", unbound))
		}
	}

	log.Debug("resolved container",
		zap.Int("bindings", len(res.Bindings)),
		zap.Int("multibinding_types", len(res.Multibindings)),
		zap.Int("compressed", len(res.Compressions)),
		zap.Uint64("arena_bytes", uint64(alloc.TotalSize())))

	return res, nil
}

// Fatal exit plumbing, replaceable in tests.
var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// MustResolve is Resolve for programs that fail fast: on error it writes the
// diagnostic to stderr and terminates the process with status 1.
func MustResolve(s *component.Storage, opts ...Option) *Result {
	res, err := Resolve(s, opts...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		exit(1)

		return nil
	}

	return res
}
