package congestion_test

import (
	"fmt"
	"testing"

	"github.com/irespan/ire/congestion"
	"github.com/irespan/ire/graph"
	"github.com/irespan/ire/lca"
	"github.com/irespan/ire/tree"
)

// buildCycleGraph constructs an n-vertex cycle N0-N1-...-N(n-1)-N0 with
// unit capacities, spanned by the path tree N0-N1-...-N(n-1).
func buildCycleGraph(b *testing.B, n int) (*graph.Graph, *tree.Tree) {
	b.Helper()
	bld := graph.NewBuilder()
	parent := make(map[string]string, n-1)
	for i := 0; i < n; i++ {
		u := fmt.Sprintf("N%d", i)
		v := fmt.Sprintf("N%d", (i+1)%n)
		if err := bld.AddEdge(u, v, 1); err != nil {
			b.Fatalf("AddEdge: %v", err)
		}
		if i > 0 {
			parent[u] = fmt.Sprintf("N%d", i-1)
		}
	}
	g, err := bld.Build()
	if err != nil {
		b.Fatalf("Build: %v", err)
	}
	t, err := tree.New("N0", parent)
	if err != nil {
		b.Fatalf("tree.New: %v", err)
	}

	return g, t
}

// BenchmarkTreeCapacities_Cycle1000 measures induced tree-capacity
// computation on a 1000-vertex cycle.
func BenchmarkTreeCapacities_Cycle1000(b *testing.B) {
	g, t := buildCycleGraph(b, 1000)
	l := lca.Build(t)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = congestion.TreeCapacities(g, t, l)
	}
}

// BenchmarkEdgeCongestion_Cycle1000 measures per-edge congestion
// computation on the same cycle, including the LCA reweighting pass.
func BenchmarkEdgeCongestion_Cycle1000(b *testing.B) {
	g, t := buildCycleGraph(b, 1000)
	l := lca.Build(t)
	cT := congestion.TreeCapacities(g, t, l)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := congestion.EdgeCongestion(g, l, cT)
		if err != nil {
			b.Fatalf("EdgeCongestion: %v", err)
		}
	}
}
