package cuts_test

import (
	"fmt"
	"testing"

	"github.com/irespan/ire/cuts"
	"github.com/irespan/ire/graph"
	"github.com/irespan/ire/tree"
)

// BenchmarkExtractTreeCuts_Cycle500 measures bottleneck-cut extraction on
// a 500-vertex cycle spanned by its path tree.
func BenchmarkExtractTreeCuts_Cycle500(b *testing.B) {
	const n = 500
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

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cuts.ExtractTreeCuts(g, t, -1)
	}
}
