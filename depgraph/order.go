package depgraph

import (
	"errors"

	"github.com/ygrebnov/errorc"

	"github.com/katalvlaran/injgraph/component"
	"github.com/katalvlaran/injgraph/dfs"
	"github.com/katalvlaran/injgraph/internal/diag"
)

// TopologicalOrder returns the bound types ordered so that every type comes
// after all of its bound dependencies. Unbound dependencies are not listed.
// Among independent types the table order is kept.
//
// On a loop it returns an error wrapping a *LoopError (use errors.As),
// annotated with the type that closes the loop and the dependency it
// closes it through.
func (g *Graph) TopologicalOrder() ([]component.TypeID, error) {
	// 1. Dependents-first order of the whole graph
	order, err := dfs.TopologicalSort(g.g)
	if err != nil {
		var cyc *dfs.CycleError
		if errors.As(err, &cyc) {
			return nil, g.loopError(cyc.Path)
		}

		return nil, err
	}

	// 2. Edges point from dependent to dependency: reversed, the order is
	//    dependencies-first. Unbound leaves are dropped.
	out := make([]component.TypeID, 0, len(g.bound))
	for i := len(order) - 1; i >= 0; i-- {
		if g.bound[order[i]] {
			out = append(out, g.types[order[i]])
		}
	}

	return out, nil
}

// Cycles returns every distinct dependency loop, each as a closed path
// starting at its smallest type name, or nil when there is none.
func (g *Graph) Cycles() [][]component.TypeID {
	_, cycles, err := dfs.DetectCycles(g.g)
	if err != nil {
		return nil
	}
	out := make([][]component.TypeID, 0, len(cycles))
	for _, c := range cycles {
		out = append(out, g.typesOf(c))
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

func (g *Graph) loopError(path []string) error {
	loop := &LoopError{Path: g.typesOf(path)}
	n := len(path)

	return errorc.With(loop,
		errorc.String(diag.KeyType, path[n-2]),
		errorc.String(diag.KeyDep, path[n-1]))
}
