package dfs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/injgraph/core"
)

// cycleFinder holds the state of one DetectCycles traversal.
type cycleFinder struct {
	graph  *core.Graph
	state  map[string]int
	path   []string
	seen   map[string]struct{} // canonical signatures already recorded
	cycles [][]string
}

// DetectCycles returns every distinct cycle closed by a back-edge of a
// full DFS over g, as closed paths [v0, v1, ..., v0] rotated to start at
// their smallest vertex ID and sorted by signature.
// Returns (false, nil, nil) for a nil or acyclic graph.
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	// 1. Nil graph is treated as cycle-free
	if g == nil {
		return false, nil, nil
	}

	// 2. Launch DFS from each unvisited vertex
	verts := g.Vertices()
	f := &cycleFinder{
		graph: g,
		state: make(map[string]int, len(verts)),
		path:  make([]string, 0, len(verts)),
		seen:  make(map[string]struct{}),
	}
	for _, v := range verts {
		if f.state[v] == White {
			if err := f.visit(v); err != nil {
				return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
			}
		}
	}
	if len(f.cycles) == 0 {
		return false, nil, nil
	}

	// 3. Deterministic output order
	sort.Slice(f.cycles, func(i, j int) bool {
		return signature(f.cycles[i]) < signature(f.cycles[j])
	})

	return true, f.cycles, nil
}

func (f *cycleFinder) visit(id string) error {
	// 1. Mark Gray and push on the path
	f.state[id] = Gray
	f.path = append(f.path, id)

	// 2. Explore every outgoing edge
	neighbors, err := f.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, nbr := range neighbors {
		switch f.state[nbr] {
		case White:
			if err = f.visit(nbr); err != nil {
				return err
			}
		case Gray:
			f.record(closePath(f.path, nbr))
		}
	}

	// 3. Backtrack
	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black

	return nil
}

// record stores cycle in canonical rotation unless it was already seen.
func (f *cycleFinder) record(cycle []string) {
	canon := canonical(cycle)
	sig := signature(canon)
	if _, dup := f.seen[sig]; dup {
		return
	}
	f.seen[sig] = struct{}{}
	f.cycles = append(f.cycles, canon)
}

// closePath returns path from the first occurrence of start, closed by
// appending start again.
func closePath(path []string, start string) []string {
	idx := indexOf(path, start)
	out := make([]string, 0, len(path)-idx+1)
	out = append(out, path[idx:]...)

	return append(out, start)
}

// canonical rotates the closed cycle so that it starts at its
// lexicographically smallest rotation, and closes it again.
func canonical(cycle []string) []string {
	base := cycle[:len(cycle)-1]
	best := 0
	for k := 1; k < len(base); k++ {
		if lessRotation(base, k, best) {
			best = k
		}
	}
	out := make([]string, 0, len(cycle))
	for i := range base {
		out = append(out, base[(best+i)%len(base)])
	}

	return append(out, out[0])
}

// lessRotation reports whether the rotation of s starting at a orders
// before the one starting at b.
func lessRotation(s []string, a, b int) bool {
	n := len(s)
	for i := 0; i < n; i++ {
		x, y := s[(a+i)%n], s[(b+i)%n]
		if x != y {
			return x < y
		}
	}

	return false
}

func signature(cycle []string) string {
	return strings.Join(cycle, ",")
}

// indexOf returns the first index of val in s, or -1 if not found.
// Time Complexity: O(n) where n = len(s).
func indexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}
