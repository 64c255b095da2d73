// Package multibind merges independent multibinding providers into one
// collection per type.
//
// Providers of the same type are order-insensitive contributions to a
// single collection reached through one shared "get all instances" accessor.
// AddMultibindings groups them by type, keeps that accessor once per type,
// and records the allocation needs of every provider in the allocator plan.
//
// Complexity:
//
//   - Time:   O(M log M) for M providers (sorting), plus O(M) merging.
//   - Memory: O(M).
package multibind

import (
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/injgraph/allocator"
	"github.com/katalvlaran/injgraph/component"
	"github.com/katalvlaran/injgraph/internal/diag"
)

// ErrNilTable is returned when AddMultibindings is given a nil table.
var ErrNilTable = diag.NewError("multibinding table is nil")

// Elem is one provider of a merged collection.
type Elem struct {
	Create          component.Factory
	Deps            []component.TypeID
	NeedsAllocation bool
}

// Normalized is the merged collection of one type.
type Normalized struct {
	// Elems holds one element per provider.
	Elems []Elem

	// GetAll is the accessor shared by every provider of the type.
	GetAll component.GetMultibindingsFunc
}

// Table maps a type to its merged collection. Types with no provider have
// no entry.
type Table map[component.TypeID]*Normalized

// Types returns the types of the table, sorted.
func (t Table) Types() []component.TypeID {
	out := make([]component.TypeID, 0, len(t))
	for id := range t {
		out = append(out, id)
	}
	slices.SortFunc(out, component.Compare)

	return out
}

// Option configures AddMultibindings.
type Option func(*Options)

// Options holds the merger settings.
type Options struct {
	// Logger receives debug-level merge events. Defaults to a no-op logger.
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

// AddMultibindings merges multibindings into table and records every
// provider in alloc (nil alloc disables accounting).
//
// Entries already in table are extended, not replaced. Within a type,
// providers keep their declaration order. The input slice is not modified.
func AddMultibindings(table Table, alloc *allocator.Data, multibindings []component.Multibinding, opts ...Option) error {
	// 1. Validate output table
	if table == nil {
		return ErrNilTable
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if alloc == nil {
		alloc = allocator.New()
	}

	// 3. Group providers by type
	sorted := slices.Clone(multibindings)
	slices.SortStableFunc(sorted, func(a, b component.Multibinding) int {
		return component.Compare(a.Type, b.Type)
	})

	// 4. Merge each run of equal types
	for i := 0; i < len(sorted); {
		t := sorted[i].Type
		n := table[t]
		if n == nil {
			n = &Normalized{}
			table[t] = n
		}
		// Might be set already, but must be set if this type had no providers yet.
		n.GetAll = sorted[i].Data.GetAll

		start := i
		for ; i < len(sorted) && sorted[i].Type == t; i++ {
			mb := sorted[i].Data
			n.Elems = append(n.Elems, Elem{Create: mb.Create, Deps: mb.Deps, NeedsAllocation: mb.NeedsAllocation})
			if mb.NeedsAllocation {
				alloc.AddType(t)
			} else {
				alloc.AddExternallyAllocatedType(t)
			}
		}
		o.Logger.Debug("merged multibindings", zap.Stringer("type", t), zap.Int("providers", i-start))
	}

	return nil
}
