package normalize

import (
	"github.com/ygrebnov/errorc"

	"github.com/katalvlaran/injgraph/allocator"
	"github.com/katalvlaran/injgraph/component"
	"github.com/katalvlaran/injgraph/internal/diag"
)

// bindingTable is the deduplicated type→binding map, remembering the order
// in which types were first bound so the output is deterministic.
type bindingTable struct {
	data  map[component.TypeID]component.BindingData
	order []component.TypeID
}

func newBindingTable(capacity int) *bindingTable {
	return &bindingTable{
		data:  make(map[component.TypeID]component.BindingData, capacity),
		order: make([]component.TypeID, 0, capacity),
	}
}

// entries returns the surviving bindings in first-bound order.
func (t *bindingTable) entries() []component.Binding {
	out := make([]component.Binding, 0, len(t.data))
	for _, id := range t.order {
		if data, ok := t.data[id]; ok {
			out = append(out, component.Binding{Type: id, Data: data})
		}
	}

	return out
}

// NormalizeBindings deduplicates bindings, records the allocation needs of
// every raw declaration in alloc, and applies the compression candidates that
// are safe given the multibindings and the exposed types.
//
// It returns the normalized bindings in the order their types were first
// bound, and the record of every applied compression. On a conflicting
// duplicate it returns an error wrapping a *ConflictError (use errors.As)
// and no bindings; alloc must then be discarded.
//
// The input slices are not modified. A nil alloc disables accounting.
func NormalizeBindings(
	bindings []component.Binding,
	alloc *allocator.Data,
	compressed []component.CompressedBinding,
	multibindings []component.Multibinding,
	exposed []component.TypeID,
	opts ...Option,
) ([]component.Binding, BindingCompressionInfoMap, error) {
	// 1. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2. Deduplicate, rejecting inconsistent duplicates
	table := newBindingTable(len(bindings))
	for _, b := range bindings {
		existing, seen := table.data[b.Type]
		if !seen {
			table.data[b.Type] = b.Data
			table.order = append(table.order, b.Type)
			continue
		}
		if !existing.Equal(b.Data) {
			conflict := &ConflictError{Type: b.Type, Existing: existing, Duplicate: b.Data}

			return nil, nil, errorc.With(conflict, errorc.String(diag.KeyType, b.Type.String()))
		}
		// Duplicate but consistent binding.
	}

	// 3. Allocator accounting, once per raw declaration
	if alloc == nil {
		alloc = allocator.New()
	}
	for _, b := range bindings {
		if b.Data.NeedsAllocation() {
			alloc.AddType(b.Type)
		} else {
			alloc.AddExternallyAllocatedType(b.Type)
		}
	}

	// 4. Compression
	c := &compressor{table: table, log: o.Logger}
	c.collect(compressed)
	c.excludeMultibindingDeps(multibindings)
	c.excludeExposed(exposed)
	c.excludeSharedDeps()
	info := c.apply()

	return table.entries(), info, nil
}
