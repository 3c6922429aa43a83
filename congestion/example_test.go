package congestion_test

import (
	"fmt"

	"github.com/irespan/ire/congestion"
	"github.com/irespan/ire/graph"
	"github.com/irespan/ire/lca"
	"github.com/irespan/ire/tree"
)

// ExampleTreeCapacities demonstrates induced tree-edge capacity on the
// 4-cycle A-B-C-D-A with every edge capacity 1, spanned by the path tree
// A-B-C-D.
func ExampleTreeCapacities() {
	b := graph.NewBuilder()
	_ = b.AddEdge("A", "B", 1)
	_ = b.AddEdge("B", "C", 1)
	_ = b.AddEdge("C", "D", 1)
	_ = b.AddEdge("D", "A", 1)
	g, err := b.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	t, err := tree.New("A", map[string]string{"B": "A", "C": "B", "D": "C"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	l := lca.Build(t)
	cT := congestion.TreeCapacities(g, t, l)
	fmt.Println(cT[tree.OrientedEdge{Parent: "B", Child: "C"}])
	// Output: 2
}

// ExampleEdgeCongestion demonstrates per-edge congestion on the same
// square: the non-tree edge D-A routes over the full tree path
// A-B-C-D, so its congestion accumulates every tree edge's induced
// capacity along that path.
func ExampleEdgeCongestion() {
	b := graph.NewBuilder()
	_ = b.AddEdge("A", "B", 1)
	_ = b.AddEdge("B", "C", 1)
	_ = b.AddEdge("C", "D", 1)
	_ = b.AddEdge("D", "A", 1)
	g, err := b.Build()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	t, err := tree.New("A", map[string]string{"B": "A", "C": "B", "D": "C"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	l := lca.Build(t)
	cT := congestion.TreeCapacities(g, t, l)
	ec, err := congestion.EdgeCongestion(g, l, cT)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ec[graph.NewEdgeKey("A", "D")])
	// Output: 6
}
