package inspect

import (
	"slices"
	"strings"

	"github.com/katalvlaran/injgraph"
	"github.com/katalvlaran/injgraph/component"
)

// Report is a serializable snapshot of a resolution result.
type Report struct {
	Bindings      []BindingEntry      `json:"bindings"`
	Multibindings []MultibindingEntry `json:"multibindings"`
	Compressions  []CompressionEntry  `json:"compressions"`
	Allocator     AllocatorEntry      `json:"allocator"`
	Order         []string            `json:"construction_order"`
}

// BindingEntry describes one normalized binding.
// Object is the dynamic type of a created binding's instance. Dependents is
// empty when the result carries no dependency graph.
type BindingEntry struct {
	Type            string   `json:"type"`
	Deps            []string `json:"deps,omitempty"`
	Dependents      []string `json:"dependents,omitempty"`
	Created         bool     `json:"created,omitempty"`
	Object          string   `json:"object,omitempty"`
	NeedsAllocation bool     `json:"needs_allocation"`
}

// MultibindingEntry describes the merged collection of one type.
type MultibindingEntry struct {
	Type      string          `json:"type"`
	Providers []ProviderEntry `json:"providers"`
}

// ProviderEntry describes one provider of a collection.
type ProviderEntry struct {
	Deps            []string `json:"deps,omitempty"`
	NeedsAllocation bool     `json:"needs_allocation"`
}

// CompressionEntry describes one applied compression.
type CompressionEntry struct {
	Class     string `json:"class"`
	Interface string `json:"interface"`
}

// AllocatorEntry is the allocation plan.
type AllocatorEntry struct {
	TotalSize uintptr     `json:"total_size"`
	Allocated int         `json:"allocated"`
	External  int         `json:"external"`
	Types     []SlotEntry `json:"types"`
}

// SlotEntry is the plan of one type.
type SlotEntry struct {
	Type     string  `json:"type"`
	Size     uintptr `json:"size"`
	Align    uintptr `json:"align"`
	Count    int     `json:"count"`
	External int     `json:"external"`
}

// NewReport builds the snapshot of res. Compressions are sorted by class,
// collections and allocator entries by type; bindings and the construction
// order keep the result's order.
func NewReport(res *injgraph.Result) Report {
	r := Report{
		Bindings:      make([]BindingEntry, 0, len(res.Bindings)),
		Multibindings: make([]MultibindingEntry, 0, len(res.Multibindings)),
		Compressions:  make([]CompressionEntry, 0, len(res.Compressions)),
		Order:         typeNames(res.ConstructionOrder),
	}

	for _, b := range res.Bindings {
		e := BindingEntry{
			Type:            b.Type.String(),
			Deps:            typeNames(b.Data.Deps()),
			Created:         b.Data.IsCreated(),
			NeedsAllocation: b.Data.NeedsAllocation(),
		}
		if e.Created {
			e.Object = component.TypeOfValue(b.Data.Object()).String()
		}
		if res.Graph != nil {
			e.Dependents = typeNames(res.Graph.Dependents(b.Type))
		}
		r.Bindings = append(r.Bindings, e)
	}

	for _, t := range res.Multibindings.Types() {
		m := MultibindingEntry{Type: t.String()}
		for _, e := range res.Multibindings[t].Elems {
			m.Providers = append(m.Providers, ProviderEntry{
				Deps:            typeNames(e.Deps),
				NeedsAllocation: e.NeedsAllocation,
			})
		}
		r.Multibindings = append(r.Multibindings, m)
	}

	for class, info := range res.Compressions {
		r.Compressions = append(r.Compressions, CompressionEntry{
			Class:     class.String(),
			Interface: info.InterfaceID.String(),
		})
	}
	slices.SortFunc(r.Compressions, func(a, b CompressionEntry) int {
		return strings.Compare(a.Class, b.Class)
	})

	if alloc := res.Allocator; alloc != nil {
		r.Allocator = AllocatorEntry{
			TotalSize: alloc.TotalSize(),
			Allocated: alloc.NumAllocated(),
			External:  alloc.NumExternallyAllocated(),
		}
		for _, t := range alloc.Types() {
			r.Allocator.Types = append(r.Allocator.Types, SlotEntry{
				Type:     t.String(),
				Size:     t.Size(),
				Align:    t.Align(),
				Count:    alloc.Count(t),
				External: alloc.ExternalCount(t),
			})
		}
	}

	return r
}

func typeNames(ids []component.TypeID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}

	return out
}
