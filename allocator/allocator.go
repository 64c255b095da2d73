// Package allocator accumulates the allocation plan of one container: how
// many instances of each type the engine must place in its fixed-size arena,
// and how many are supplied from outside.
//
// The plan is filled by the normalizer and the multibinding merger, one
// entry per raw declaration, and consumed by the construction stage to size
// a single allocation region up front.
//
// Complexity:
//
//   - AddType, AddExternallyAllocatedType, Count, ExternalCount: O(1) amortized.
//   - Types: O(T log T) for T distinct types.
package allocator

import (
	"slices"

	"github.com/katalvlaran/injgraph/component"
)

// Data is the running tally. The zero value is ready to use.
type Data struct {
	totalSize   uintptr
	numExternal int
	managed     map[component.TypeID]int
	external    map[component.TypeID]int
}

// New returns an empty tally.
func New() *Data {
	return &Data{
		managed:  make(map[component.TypeID]int),
		external: make(map[component.TypeID]int),
	}
}

// AddType records one engine-allocated instance of t and grows the arena by
// the worst-case space it can take once aligned.
func (d *Data) AddType(t component.TypeID) {
	if d.managed == nil {
		d.managed = make(map[component.TypeID]int)
	}
	d.managed[t]++
	d.totalSize += MaximumRequiredSpace(t)
}

// AddExternallyAllocatedType records one instance of t supplied from outside.
func (d *Data) AddExternallyAllocatedType(t component.TypeID) {
	if d.external == nil {
		d.external = make(map[component.TypeID]int)
	}
	d.external[t]++
	d.numExternal++
}

// Count returns how many engine-allocated instances of t were recorded.
func (d *Data) Count(t component.TypeID) int { return d.managed[t] }

// ExternalCount returns how many externally supplied instances of t were recorded.
func (d *Data) ExternalCount(t component.TypeID) int { return d.external[t] }

// TotalSize returns the arena size, in bytes, that fits every recorded
// engine-allocated instance at its alignment.
func (d *Data) TotalSize() uintptr { return d.totalSize }

// NumExternallyAllocated returns the total of externally supplied instances.
func (d *Data) NumExternallyAllocated() int { return d.numExternal }

// NumAllocated returns the total of engine-allocated instances.
func (d *Data) NumAllocated() int {
	n := 0
	for _, c := range d.managed {
		n += c
	}

	return n
}

// Types returns every type with at least one recorded instance, sorted.
func (d *Data) Types() []component.TypeID {
	out := make([]component.TypeID, 0, len(d.managed)+len(d.external))
	for t := range d.managed {
		out = append(out, t)
	}
	for t := range d.external {
		if _, dup := d.managed[t]; !dup {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, component.Compare)

	return out
}

// MaximumRequiredSpace is the space one instance of t may need in the arena:
// its size plus the padding required to align it from any offset.
func MaximumRequiredSpace(t component.TypeID) uintptr {
	align := t.Align()
	if align == 0 {
		align = 1
	}

	return t.Size() + align - 1
}
