package core

import (
	"strconv"
)

// AddVertex inserts a vertex with the given ID if absent.
// Adding an existing vertex is a no-op.
// Thread-safe: acquires the vertex write lock.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked inserts id; the caller holds muVert.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id}
	g.order = append(g.order, id)
}

// HasVertex reports whether the graph contains a vertex with the given ID.
// Thread-safe: acquires the vertex read lock.
func (g *Graph) HasVertex(id string) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns every vertex ID in insertion order.
// Thread-safe: acquires the vertex read lock.
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return append([]string(nil), g.order...)
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.order)
}

// AddEdge adds the directed edge from→to and returns its ID.
// Missing endpoints are added first, from before to.
// Thread-safe: acquires both write locks.
//
// Errors: ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
func (g *Graph) AddEdge(from, to string) (string, error) {
	// 1. Validate endpoints against the graph configuration
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 2. Reject parallel edges unless allowed
	if !g.allowMulti {
		for _, e := range g.out[from] {
			if e.To == to {
				return "", ErrMultiEdgeNotAllowed
			}
		}
	}

	// 3. Ensure both endpoints exist
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 4. Record the edge on both adjacency sides
	g.nextEdgeID++
	e := &Edge{ID: "e" + strconv.FormatUint(g.nextEdgeID, 10), From: from, To: to}
	g.out[from] = append(g.out[from], e)
	g.in[to] = append(g.in[to], e)

	return e.ID, nil
}

// HasEdge reports whether at least one edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, e := range g.out[from] {
		if e.To == to {
			return true
		}
	}

	return false
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return int(g.nextEdgeID)
}

// Neighbors returns the outgoing edges of id in insertion order.
// Thread-safe: acquires both read locks.
//
// Errors: ErrVertexNotFound.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return append([]*Edge(nil), g.out[id]...), nil
}

// NeighborIDs returns the distinct targets of the outgoing edges of id,
// in first-edge order.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	return distinct(edges, func(e *Edge) string { return e.To }), nil
}

// Predecessors returns the distinct sources of the incoming edges of id,
// in first-edge order.
//
// Errors: ErrVertexNotFound.
func (g *Graph) Predecessors(id string) ([]string, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return distinct(g.in[id], func(e *Edge) string { return e.From }), nil
}

// distinct maps edges to vertex IDs, dropping repeats.
func distinct(edges []*Edge, end func(*Edge) string) []string {
	if len(edges) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	for _, e := range edges {
		id := end(e)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
