package dfs

import (
	"fmt"

	"github.com/katalvlaran/injgraph/core"
)

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter struct {
	graph *core.Graph    // the graph being sorted
	state map[string]int // White (absent) / Gray / Black
	path  []string       // current DFS path, for cycle reconstruction
	order []string       // recorded post-order sequence
}

// TopologicalSort computes a topological ordering of all vertices in g.
// Among independent vertices, the ones inserted later come first.
//
// Errors:
//
//   - ErrGraphNil if g is nil.
//   - *CycleError (errors.Is ErrCycleDetected) if g has a cycle.
//   - ErrNeighborFetch if neighbour lookup fails.
func TopologicalSort(g *core.Graph) ([]string, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Initialize sorter state
	verts := g.Vertices()
	sorter := &topoSorter{
		graph: g,
		state: make(map[string]int, len(verts)),
		path:  make([]string, 0, len(verts)),
		order: make([]string, 0, len(verts)),
	}

	// 3. Drive DFS from every unvisited vertex
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// 4. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs a DFS from id, marking states and detecting cycles.
func (t *topoSorter) visit(id string) error {
	// 1. Back-edge to the current path: cycle
	switch t.state[id] {
	case Gray:
		return &CycleError{Path: closePath(t.path, id)}
	case Black:
		return nil
	}

	// 2. Mark as in-progress and push on the path
	t.state[id] = Gray
	t.path = append(t.path, id)

	// 3. Retrieve neighbours
	neighbors, err := t.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}

	// 4. Recurse into each neighbour in edge order
	for _, nbr := range neighbors {
		if err = t.visit(nbr); err != nil {
			return err
		}
	}

	// 5. Pop, mark as fully explored, record in post-order
	t.path = t.path[:len(t.path)-1]
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
