// File: lca.go
// Role: Build (binary lifting table), LCA query, SetEdgeWeights/Dist
// (path-sum queries over a mutable oriented-edge weighting).
package lca

import (
	"errors"
	"math"

	"github.com/irespan/ire/tree"
)

// ErrMissingParent indicates SetEdgeWeights's prefix pass reached a
// non-root vertex with no recorded parent — this should be unreachable
// given a valid tree.Tree, and signals a constructor invariant violation.
var ErrMissingParent = errors.New("lca: non-root vertex missing parent during prefix computation")

// LCA is a binary-lifting ancestor table bound to a tree.Tree, plus a
// mutable oriented-edge weighting and its prefix sums.
type LCA struct {
	t      *tree.Tree
	maxLog int
	// up[k][v] is the 2^k-th ancestor of v, or "" with ok=false past root.
	up []map[string]string

	edgeWeights map[tree.OrientedEdge]float64
	prefix      map[string]float64
}

// Build constructs the ancestor table for t. Complexity: O(V log V).
func Build(t *tree.Tree) *LCA {
	nodes := t.BFSOrder()
	n := len(nodes)
	maxLog := 0
	if n > 1 {
		maxLog = int(math.Ceil(math.Log2(float64(n))))
	}

	up := make([]map[string]string, maxLog+1)
	up[0] = make(map[string]string, n)
	for _, v := range nodes {
		if p, ok := t.Parent(v); ok {
			up[0][v] = p
		}
	}
	for k := 1; k <= maxLog; k++ {
		up[k] = make(map[string]string, n)
		for _, v := range nodes {
			if mid, ok := up[k-1][v]; ok {
				if anc, ok2 := up[k-1][mid]; ok2 {
					up[k][v] = anc
				}
			}
		}
	}

	l := &LCA{t: t, maxLog: maxLog, up: up}
	// A freshly built Tree is always fully connected, so the zero-weight
	// prefix pass cannot fail; the error is impossible here by construction.
	_ = l.SetEdgeWeights(nil)

	return l
}

// LCA returns the lowest common ancestor of u and v.
//
// Complexity: O(log V).
func (l *LCA) LCA(u, v string) string {
	du, _ := l.t.Depth(u)
	dv, _ := l.t.Depth(v)
	if du < dv {
		u, v = v, u
		du, dv = dv, du
	}

	diff := du - dv
	for k := 0; k <= l.maxLog; k++ {
		if diff&(1<<uint(k)) != 0 {
			anc, ok := l.up[k][u]
			if !ok {
				break
			}
			u = anc
		}
	}
	if u == v {
		return u
	}

	// u and v now share depth; their k-th ancestors are simultaneously
	// defined or simultaneously past the root (depths are equal), so a
	// plain map index (zero value "" for "past root") is safe to compare.
	for k := l.maxLog; k >= 0; k-- {
		if l.up[k][u] != l.up[k][v] {
			u = l.up[k][u]
			v = l.up[k][v]
		}
	}
	// u and v are now both children of their LCA.
	parent, _ := l.t.Parent(u)

	return parent
}

// SetEdgeWeights replaces the oriented edge weighting and recomputes
// prefix sums in a single O(V) pass over BFS order. A nil/empty weights
// map zeroes every edge weight (used by Build to establish prefix={root:0}).
// Returns ErrMissingParent if a non-root vertex has no recorded parent —
// unreachable given a tree.Tree built by tree.New, but checked explicitly
// per spec rather than assumed.
//
// Complexity: O(V).
func (l *LCA) SetEdgeWeights(weights map[tree.OrientedEdge]float64) error {
	l.edgeWeights = make(map[tree.OrientedEdge]float64, len(weights))
	for k, w := range weights {
		l.edgeWeights[k] = w
	}

	root := l.t.Root()
	l.prefix = map[string]float64{root: 0}
	for _, v := range l.t.BFSOrder() {
		if v == root {
			continue
		}
		parent, ok := l.t.Parent(v)
		if !ok {
			return ErrMissingParent
		}
		w := l.edgeWeights[tree.OrientedEdge{Parent: parent, Child: v}]
		l.prefix[v] = l.prefix[parent] + w
	}

	return nil
}

// Dist returns the path length between u and v under the current edge
// weighting: prefix[u] + prefix[v] - 2*prefix[lca(u,v)].
//
// Complexity: O(log V).
func (l *LCA) Dist(u, v string) float64 {
	anc := l.LCA(u, v)

	return l.prefix[u] + l.prefix[v] - 2*l.prefix[anc]
}

// Prefix returns the current root-to-v weighted prefix sum.
func (l *LCA) Prefix(v string) float64 { return l.prefix[v] }
