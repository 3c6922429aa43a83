package report_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/irespan/ire/graph"
	"github.com/irespan/ire/mwu"
	"github.com/irespan/ire/report"
	"github.com/irespan/ire/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareGraph(t *testing.T) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder()
	require.NoError(t, b.AddEdge("A", "B", 1))
	require.NoError(t, b.AddEdge("B", "C", 1))
	require.NoError(t, b.AddEdge("C", "D", 1))
	require.NoError(t, b.AddEdge("D", "A", 1))
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

func oneTreeMixture(t *testing.T) []mwu.TreeRecord {
	t.Helper()
	tr, err := tree.New("A", map[string]string{"B": "A", "D": "A", "C": "B"})
	require.NoError(t, err)

	return []mwu.TreeRecord{{Root: "A", Edges: tr.Edges(), Count: 4, Prob: 1.0}}
}

func TestAssembleReport_Shape(t *testing.T) {
	g := squareGraph(t)
	trees := oneTreeMixture(t)
	ec := map[graph.EdgeKey]float64{}
	for _, e := range g.Edges() {
		ec[e.Key()] = 1.0
	}

	payload, err := report.AssembleReport(g, trees, ec, report.Parameters{Iters: 4, Candidates: 1, Seed: 0, Alpha: 10})
	require.NoError(t, err)

	assert.Equal(t, 4, payload.Graph.Nodes)
	assert.Equal(t, 4, payload.Graph.Edges)
	assert.Equal(t, 1, payload.Mixture.UniqueTrees)
	assert.Equal(t, 4, payload.Mixture.TotalSamples)
	assert.Len(t, payload.CriticalEdges, 4)
	assert.NotEmpty(t, payload.BottleneckCuts)

	for i := 1; i < len(payload.BottleneckCuts); i++ {
		assert.LessOrEqual(t, payload.BottleneckCuts[i-1].Capacity, payload.BottleneckCuts[i].Capacity)
	}
}

func TestBuildMixturePayload_RoundTripsThroughRecompute(t *testing.T) {
	g := squareGraph(t)
	trees := oneTreeMixture(t)
	cfg := mwu.Config{Iterations: 4, Candidates: 1, LearningRate: 0.6, Seed: 0}
	res := &mwu.Result{Trees: trees, EC: map[graph.EdgeKey]float64{}, Alpha: 10}
	for _, e := range g.Edges() {
		res.EC[e.Key()] = 1.0
	}

	mixturePayload := report.BuildMixturePayload("square.edges", cfg, res)
	require.Len(t, mixturePayload.Trees, 1)
	assert.Equal(t, "A", mixturePayload.Trees[0].Root)

	rpt, err := report.Recompute(g, mixturePayload)
	require.NoError(t, err)
	assert.Equal(t, 1, rpt.Mixture.UniqueTrees)
	assert.Equal(t, 4, rpt.Mixture.TotalSamples)
	assert.NotEmpty(t, rpt.CriticalEdges)
}

func TestAssembleReport_RepeatableForIdenticalInputs(t *testing.T) {
	g := squareGraph(t)
	trees := oneTreeMixture(t)
	ec := map[graph.EdgeKey]float64{}
	for _, e := range g.Edges() {
		ec[e.Key()] = 1.0
	}
	params := report.Parameters{Iters: 4, Candidates: 1, Seed: 0, Alpha: 10}

	first, err := report.AssembleReport(g, trees, ec, params)
	require.NoError(t, err)
	second, err := report.AssembleReport(g, trees, ec, params)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("AssembleReport is not repeatable for identical inputs (-first +second):\n%s", diff)
	}
}

func TestCriticalEdges_SortedDescendingByEC(t *testing.T) {
	g := squareGraph(t)
	ec := map[graph.EdgeKey]float64{
		graph.NewEdgeKey("A", "B"): 3,
		graph.NewEdgeKey("B", "C"): 1,
		graph.NewEdgeKey("C", "D"): 4,
		graph.NewEdgeKey("D", "A"): 2,
	}

	top := report.CriticalEdges(g, ec, 2)
	require.Len(t, top, 2)
	assert.GreaterOrEqual(t, top[0].ExpectedCongestion, top[1].ExpectedCongestion)
	assert.InDelta(t, 4.0, top[0].ExpectedCongestion, 1e-9)
}
