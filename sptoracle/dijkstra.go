// File: dijkstra.go
// Role: SPT — Dijkstra's algorithm producing a *tree.Tree via a
// heap/runner/relax structure.
package sptoracle

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/irespan/ire/graph"
	"github.com/irespan/ire/tree"
)

// SPT computes a shortest-path tree from root over g using the supplied
// per-edge lengths (keyed by canonical graph.EdgeKey; every graph edge
// must have an entry). Vertices unreachable from root (shouldn't happen
// on a connected graph, but defensively) get parent = root — an
// intentional, documented compatibility choice, not silently swallowed
// (see spec Open Question (c) / DESIGN.md).
//
// Complexity: O((V + E) log V).
func SPT(g *graph.Graph, lengths map[graph.EdgeKey]float64, root string) (*tree.Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if root == "" {
		return nil, ErrEmptyRoot
	}
	if !g.HasVertex(root) {
		return nil, ErrVertexNotFound
	}
	for _, e := range g.Edges() {
		l, ok := lengths[e.Key()]
		if !ok {
			return nil, fmt.Errorf("%w: %s-%s", ErrMissingLength, e.U, e.V)
		}
		if l < 0 {
			return nil, fmt.Errorf("%w: %s-%s=%g", ErrNegativeLength, e.U, e.V, l)
		}
	}

	r := &runner{
		g:       g,
		lengths: lengths,
		dist:    make(map[string]float64, g.NumVertices()),
		parent:  make(map[string]string, g.NumVertices()),
		visited: make(map[string]bool, g.NumVertices()),
	}
	r.init(root)
	if err := r.process(); err != nil {
		return nil, err
	}

	// Vertices never reached (disconnected graph) fall back to parent=root.
	for _, v := range g.Vertices() {
		if v == root {
			continue
		}
		if !r.visited[v] {
			r.parent[v] = root
		}
	}

	return tree.New(root, r.parent)
}

type runner struct {
	g       *graph.Graph
	lengths map[graph.EdgeKey]float64
	dist    map[string]float64
	parent  map[string]string
	visited map[string]bool
	pq      nodePQ
}

func (r *runner) init(root string) {
	for _, v := range r.g.Vertices() {
		r.dist[v] = math.Inf(1)
	}
	r.dist[root] = 0
	r.pq = make(nodePQ, 0, r.g.NumVertices())
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: root, dist: 0})
}

func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines u's neighbors in sorted-label order (graph.Neighbors
// guarantees that ordering); combined with the heap's (dist, label)
// secondary ordering, this makes the resulting predecessor assignment
// deterministic: the first popped predecessor to reach v's final distance
// is kept, so among candidates equally far from the root the
// lexicographically smallest label wins (spec Open Question (a)).
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("sptoracle: neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		v := e.V
		length := r.lengths[graph.NewEdgeKey(u, v)]
		newDist := r.dist[u] + length
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.parent[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap ordered first by dist ascending, then by id
// ascending — the secondary key is what makes candidate extraction order
// (and therefore the reproducibility contract) independent of Go's
// unordered map iteration elsewhere in the pipeline.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
