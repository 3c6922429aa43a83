package lca_test

import (
	"fmt"

	"github.com/irespan/ire/lca"
	"github.com/irespan/ire/tree"
)

// ExampleBuild demonstrates building a binary-lifting table over a small
// rooted tree and querying lowest common ancestors.
func ExampleBuild() {
	// Tree shape:
	//       A
	//      / \
	//     B   C
	//    /
	//   D
	t, err := tree.New("A", map[string]string{"B": "A", "C": "A", "D": "B"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	l := lca.Build(t)
	fmt.Println(l.LCA("D", "C"))
	fmt.Println(l.LCA("D", "B"))
	// Output:
	// A
	// B
}

// ExampleLCA_Dist demonstrates weighted path-length queries once an
// oriented-edge weighting has been installed via SetEdgeWeights.
func ExampleLCA_Dist() {
	t, err := tree.New("A", map[string]string{"B": "A", "C": "A"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	l := lca.Build(t)
	_ = l.SetEdgeWeights(map[tree.OrientedEdge]float64{
		{Parent: "A", Child: "B"}: 3,
		{Parent: "A", Child: "C"}: 4,
	})

	fmt.Println(l.Dist("B", "C"))
	// Output: 7
}
