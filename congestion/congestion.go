// File: congestion.go
// Role: TreeCapacities (c_T via the add[]/LCA/reverse-BFS trick) and
// EdgeCongestion (cong_T via weighted tree distance / capacity).
package congestion

import (
	"math"

	"github.com/irespan/ire/graph"
	"github.com/irespan/ire/lca"
	"github.com/irespan/ire/tree"
)

// TreeCapacities computes c_T(parent,child) for every tree edge: the
// aggregate capacity of every graph edge whose tree path crosses that
// edge. Result is non-negative for every tree edge.
//
// Algorithm:
//  1. add[v] = 0 for all v.
//  2. For each graph edge (u,v,w): add[u]+=w, add[v]+=w, add[lca(u,v)]-=2w.
//  3. Reverse-BFS: for each non-root v, c_T(parent[v],v) = add[v] (the
//     subtree sum at v, captured before propagating add[v] into its
//     parent).
//
// Complexity: O(E log V) for LCA lookups + O(V) for propagation.
func TreeCapacities(g *graph.Graph, t *tree.Tree, l *lca.LCA) map[tree.OrientedEdge]float64 {
	add := make(map[string]float64, len(t.Nodes()))
	for _, v := range t.Nodes() {
		add[v] = 0
	}

	for _, e := range g.Edges() {
		anc := l.LCA(e.U, e.V)
		add[e.U] += e.Capacity
		add[e.V] += e.Capacity
		add[anc] -= 2 * e.Capacity
	}

	bfsOrder := t.BFSOrder()
	cT := make(map[tree.OrientedEdge]float64, len(bfsOrder))
	for i := len(bfsOrder) - 1; i >= 0; i-- {
		v := bfsOrder[i]
		parent, ok := t.Parent(v)
		if !ok {
			continue // root
		}
		cT[tree.OrientedEdge{Parent: parent, Child: v}] = add[v]
		add[parent] += add[v]
	}

	return cT
}

// EdgeCongestion computes cong_T(u,v) = Dist(u,v)/capacity(u,v) for every
// graph edge, after reweighting l's oriented edges with cT. A non-positive
// capacity (should have been rejected at load time) yields +Inf rather
// than a divide-by-zero panic.
//
// Complexity: O(E log V).
func EdgeCongestion(g *graph.Graph, l *lca.LCA, cT map[tree.OrientedEdge]float64) (map[graph.EdgeKey]float64, error) {
	if err := l.SetEdgeWeights(cT); err != nil {
		return nil, err
	}

	out := make(map[graph.EdgeKey]float64, g.NumEdges())
	for _, e := range g.Edges() {
		if e.Capacity <= 0 {
			out[e.Key()] = math.Inf(1)
			continue
		}
		out[e.Key()] = l.Dist(e.U, e.V) / e.Capacity
	}

	return out, nil
}
