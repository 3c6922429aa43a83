// File: builder.go
// Role: Builder accumulates (u, v, w) triples, merges duplicates by summing
// capacity, and produces an immutable Graph.
//
// Determinism: Build() sorts vertices lexicographically once; all derived
// enumerations (Edges, Neighbors) are stable across repeated calls.
package graph

import "sort"

// Builder accumulates edges before freezing them into a Graph.
type Builder struct {
	capacity map[EdgeKey]float64
	// firstSeen preserves the (U, V) orientation of the first AddEdge call
	// for a given canonical key, purely for readability of Edges() output;
	// it carries no semantic weight (edges are undirected).
	firstSeen map[EdgeKey][2]string
	vertices  map[string]struct{}
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		capacity:  make(map[EdgeKey]float64),
		firstSeen: make(map[EdgeKey][2]string),
		vertices:  make(map[string]struct{}),
	}
}

// AddEdge merges (u, v, w) into the accumulator: duplicate unordered pairs
// have their capacities summed. Returns ErrEmptyLabel, ErrSelfLoop, or
// ErrNonPositiveCapacity on invalid input.
func (b *Builder) AddEdge(u, v string, w float64) error {
	if u == "" || v == "" {
		return ErrEmptyLabel
	}
	if u == v {
		return ErrSelfLoop
	}
	if w <= 0 {
		return ErrNonPositiveCapacity
	}

	key := NewEdgeKey(u, v)
	if _, seen := b.firstSeen[key]; !seen {
		b.firstSeen[key] = [2]string{u, v}
	}
	b.capacity[key] += w
	b.vertices[u] = struct{}{}
	b.vertices[v] = struct{}{}

	return nil
}

// AddVertex ensures an isolated vertex is present even with no incident
// edges (useful for callers assembling a graph incrementally).
func (b *Builder) AddVertex(label string) error {
	if label == "" {
		return ErrEmptyLabel
	}
	b.vertices[label] = struct{}{}

	return nil
}

// Build freezes the accumulated edges into an immutable Graph.
func (b *Builder) Build() (*Graph, error) {
	vertices := make([]string, 0, len(b.vertices))
	for v := range b.vertices {
		vertices = append(vertices, v)
	}
	sort.Strings(vertices)

	index := make(map[string]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}

	edgeOf := make(map[EdgeKey]Edge, len(b.capacity))
	adj := make(map[string]map[string]struct{}, len(vertices))
	for _, v := range vertices {
		adj[v] = make(map[string]struct{})
	}
	for key, capVal := range b.capacity {
		orient := b.firstSeen[key]
		edgeOf[key] = Edge{U: orient[0], V: orient[1], Capacity: capVal}
		adj[key.Lo][key.Hi] = struct{}{}
		adj[key.Hi][key.Lo] = struct{}{}
	}

	neighbors := make(map[string][]string, len(vertices))
	for _, v := range vertices {
		nbrs := make([]string, 0, len(adj[v]))
		for other := range adj[v] {
			nbrs = append(nbrs, other)
		}
		sort.Strings(nbrs)
		neighbors[v] = nbrs
	}

	g := &Graph{
		vertices:  vertices,
		index:     index,
		capacity:  b.capacity,
		neighbors: neighbors,
		edgeOf:    edgeOf,
	}

	return g, nil
}

func sortEdgeKeys(keys []EdgeKey) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Lo != keys[j].Lo {
			return keys[i].Lo < keys[j].Lo
		}

		return keys[i].Hi < keys[j].Hi
	})
}
