// Package core defines the directed Graph used to reason about
// dependencies between bound types, with thread-safe primitives for
// building and querying it.
//
// Vertices are identified by string IDs. Edges are directed, From→To,
// and carry no weight: an edge means "From needs To". Vertices and the
// outgoing edges of each vertex are kept in insertion order, so every
// traversal built on the graph is deterministic and follows declaration
// order.
//
// By default self-loops and parallel edges are rejected; WithLoops and
// WithMultiEdges lift those restrictions.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//
// Complexity:
//
//   - AddVertex, HasVertex, AddEdge: O(1) amortized (O(d) for AddEdge
//     without multi-edges, d = out-degree of From).
//   - Neighbors, NeighborIDs: O(d). Predecessors: O(in-degree).
//   - Vertices: O(V).
package core
