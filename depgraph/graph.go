package depgraph

import (
	"slices"

	"github.com/katalvlaran/injgraph/component"
	"github.com/katalvlaran/injgraph/core"
)

// Graph is the dependency graph of a binding table: a core.Graph whose
// vertex IDs are the type names, with an edge X→D for every dependency D of
// a recipe binding X. It is immutable once built and safe for concurrent
// reads.
type Graph struct {
	g     *core.Graph
	types map[string]component.TypeID // vertex ID → type
	bound map[string]bool             // vertices with a binding in the table
}

// Build creates the graph of bindings. Duplicate types keep their first
// binding; normalized tables have none. Types are told apart by name.
func Build(bindings []component.Binding) *Graph {
	gr := &Graph{
		g:     core.NewGraph(core.WithLoops(), core.WithMultiEdges()),
		types: make(map[string]component.TypeID, len(bindings)),
		bound: make(map[string]bool, len(bindings)),
	}

	// 1. One vertex per bound type, in table order
	firsts := make([]component.Binding, 0, len(bindings))
	for _, b := range bindings {
		id := b.Type.String()
		if gr.bound[id] {
			continue
		}
		gr.bound[id] = true
		gr.types[id] = b.Type
		_ = gr.g.AddVertex(id) // never empty: the zero TypeID renders "<nil>"
		firsts = append(firsts, b)
	}

	// 2. Dependency edges in declaration order; unbound dependencies become
	//    vertices after every bound one. Created bindings have no edges.
	for _, b := range firsts {
		if b.Data.IsCreated() {
			continue
		}
		for _, d := range b.Data.Deps() {
			dep := d.String()
			if _, known := gr.types[dep]; !known {
				gr.types[dep] = d
			}
			// Loops and parallel edges are allowed: AddEdge cannot fail here.
			_, _ = gr.g.AddEdge(b.Type.String(), dep)
		}
	}

	return gr
}

// Dependents returns the bound types that depend on t, in table order.
func (g *Graph) Dependents(t component.TypeID) []component.TypeID {
	ids, err := g.g.Predecessors(t.String())
	if err != nil {
		return nil
	}

	return g.typesOf(ids)
}

// Unbound returns, sorted and without duplicates, the dependencies no
// binding of the table provides. They are expected to come from outside the
// table (multibinding collections, an enclosing container).
func (g *Graph) Unbound() []component.TypeID {
	var out []component.TypeID
	for _, id := range g.g.Vertices() {
		if !g.bound[id] {
			out = append(out, g.types[id])
		}
	}
	slices.SortFunc(out, component.Compare)

	return out
}

func (g *Graph) typesOf(ids []string) []component.TypeID {
	if len(ids) == 0 {
		return nil
	}
	out := make([]component.TypeID, len(ids))
	for i, id := range ids {
		out[i] = g.types[id]
	}

	return out
}
