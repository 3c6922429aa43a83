// File: cuts.go
// Role: Cut, ExtractTreeCuts (sorted ascending by capacity, optional top-k).
package cuts

import (
	"sort"

	"github.com/irespan/ire/graph"
	"github.com/irespan/ire/tree"
)

// Cut is a candidate bottleneck cut induced by one tree edge.
type Cut struct {
	Edge     tree.OrientedEdge
	Capacity float64
	Nodes    []string // subtree(child), unsorted (tree.SubtreeNodes order)
}

// ExtractTreeCuts returns, for every tree edge, the cut (subtree(child),
// complement) and its exact capacity (sum of graph-edge capacities with
// exactly one endpoint in the subtree), sorted by capacity ascending. If
// topK >= 0, only the first topK cuts are returned.
//
// Complexity: per tree edge, O(|subtree|) for the SubtreeNodes walk plus
// O(E) for the capacity scan — O(V*(V+E)) worst case via the direct
// definition, acceptable since this runs once at report time, not per MWU
// iteration.
func ExtractTreeCuts(g *graph.Graph, t *tree.Tree, topK int) []Cut {
	out := make([]Cut, 0, len(t.Edges()))
	for _, e := range t.Edges() {
		subtreeNodes := t.SubtreeNodes(e.Child)
		inSubtree := make(map[string]bool, len(subtreeNodes))
		for _, n := range subtreeNodes {
			inSubtree[n] = true
		}

		var capacity float64
		for _, ge := range g.Edges() {
			if inSubtree[ge.U] != inSubtree[ge.V] {
				capacity += ge.Capacity
			}
		}

		out = append(out, Cut{Edge: e, Capacity: capacity, Nodes: subtreeNodes})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Capacity < out[j].Capacity })

	if topK >= 0 && topK < len(out) {
		out = out[:topK]
	}

	return out
}
