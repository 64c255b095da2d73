package core

import (
	"sync"

	"github.com/katalvlaran/injgraph/internal/diag"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = diag.NewError("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = diag.NewError("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = diag.NewError("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = diag.NewError("core: multi-edges not allowed")
)

// Vertex is a node of the graph.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID string
}

// Edge is a directed connection From→To.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is a directed in-memory graph.
//
// muVert protects vertices and order; muEdgeAdj protects the adjacency
// lists and the edge counter. When both are needed, muVert is taken first.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, order
	muEdgeAdj sync.RWMutex // guards out, in, nextEdgeID

	// Configuration flags
	allowLoops bool // allow self-loops
	allowMulti bool // allow parallel edges

	// Storage
	vertices   map[string]*Vertex // vertex ID → Vertex
	order      []string           // vertex IDs, insertion order
	out        map[string][]*Edge // From → outgoing edges, insertion order
	in         map[string][]*Edge // To → incoming edges, insertion order
	nextEdgeID uint64
}

// NewGraph creates an empty directed Graph.
// By default it rejects self-loops and parallel edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		out:      make(map[string][]*Edge),
		in:       make(map[string][]*Edge),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are allowed.
func (g *Graph) Multigraph() bool { return g.allowMulti }
