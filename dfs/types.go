package dfs

import (
	"strings"

	"github.com/katalvlaran/injgraph/internal/diag"
)

// Vertex states during DFS.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS path.
	Black        // Black: the vertex and all its descendants are explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to
	// TopologicalSort.
	ErrGraphNil = diag.NewError("dfs: graph is nil")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = diag.NewError("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve neighbours from the graph.
	ErrNeighborFetch = diag.NewError("dfs: failed to fetch neighbors")
)

// CycleError reports the cycle that stopped a topological sort. Path is
// closed: its first and last elements are the same vertex.
type CycleError struct {
	Path []string
}

// Error renders the cycle as "dfs: cycle detected: A -> B -> A".
func (e *CycleError) Error() string {
	return ErrCycleDetected.Error() + ": " + strings.Join(e.Path, " -> ")
}

// Unwrap makes errors.Is(err, ErrCycleDetected) hold.
func (e *CycleError) Unwrap() error { return ErrCycleDetected }
