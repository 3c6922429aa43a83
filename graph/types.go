// File: types.go
// Role: EdgeKey, Edge, Graph types and sentinel errors.
package graph

import "errors"

// Sentinel errors returned while building a Graph.
var (
	// ErrEmptyLabel indicates an edge endpoint with an empty label.
	ErrEmptyLabel = errors.New("graph: vertex label is empty")

	// ErrSelfLoop indicates an edge whose endpoints are identical.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrNonPositiveCapacity indicates an edge capacity <= 0.
	ErrNonPositiveCapacity = errors.New("graph: capacity must be positive")

	// ErrVertexNotFound indicates a lookup against a vertex absent from the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEmptyGraph indicates an operation requiring at least one vertex.
	ErrEmptyGraph = errors.New("graph: graph has no vertices")
)

// EdgeKey is the canonical unordered key for a pair of vertex labels:
// Lo <= Hi lexicographically. All per-edge maps in this system are keyed
// by EdgeKey.
type EdgeKey struct {
	Lo string
	Hi string
}

// NewEdgeKey returns the canonical key for the unordered pair (u, v).
func NewEdgeKey(u, v string) EdgeKey {
	if u <= v {
		return EdgeKey{Lo: u, Hi: v}
	}

	return EdgeKey{Lo: v, Hi: u}
}

// Edge is one undirected, capacitated graph edge.
type Edge struct {
	U        string
	V        string
	Capacity float64
}

// Key returns the canonical EdgeKey for e.
func (e Edge) Key() EdgeKey { return NewEdgeKey(e.U, e.V) }

// Graph is an immutable undirected capacitated graph. Construct via
// NewBuilder()/Builder.Build().
type Graph struct {
	vertices  []string                    // sorted, deterministic enumeration
	index     map[string]int              // label -> position in vertices
	capacity  map[EdgeKey]float64         // canonical key -> capacity
	neighbors map[string][]string         // label -> sorted neighbor labels
	edgeOf    map[EdgeKey]Edge            // canonical key -> original Edge (U,V order as first seen)
}

// Vertices returns the sorted vertex labels.
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// NumVertices returns |V|.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// NumEdges returns |E|.
func (g *Graph) NumEdges() int { return len(g.capacity) }

// HasVertex reports whether label is present.
func (g *Graph) HasVertex(label string) bool {
	_, ok := g.index[label]

	return ok
}

// Capacity returns the capacity of edge (u, v), and whether that edge exists.
func (g *Graph) Capacity(u, v string) (float64, bool) {
	c, ok := g.capacity[NewEdgeKey(u, v)]

	return c, ok
}

// Edges returns all edges, sorted by canonical key for deterministic iteration.
func (g *Graph) Edges() []Edge {
	keys := make([]EdgeKey, 0, len(g.edgeOf))
	for k := range g.edgeOf {
		keys = append(keys, k)
	}
	sortEdgeKeys(keys)

	out := make([]Edge, 0, len(keys))
	for _, k := range keys {
		out = append(out, g.edgeOf[k])
	}

	return out
}

// Neighbors returns, for a given vertex, its incident edges sorted by the
// neighbor's label — the order sptoracle relies on for deterministic
// relaxation / tie-breaking.
func (g *Graph) Neighbors(label string) ([]Edge, error) {
	if !g.HasVertex(label) {
		return nil, ErrVertexNotFound
	}

	nbrs := g.neighbors[label]
	out := make([]Edge, 0, len(nbrs))
	for _, other := range nbrs {
		cap, _ := g.Capacity(label, other)
		out = append(out, Edge{U: label, V: other, Capacity: cap})
	}

	return out, nil
}
