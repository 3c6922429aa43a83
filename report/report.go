// File: report.go
// Role: assembling mixture.json and report.json payloads, and Recompute
// (re-deriving report.json from a stored mixture).
package report

import (
	"sort"

	"github.com/irespan/ire/congestion"
	"github.com/irespan/ire/cuts"
	"github.com/irespan/ire/graph"
	"github.com/irespan/ire/lca"
	"github.com/irespan/ire/mwu"
	"github.com/irespan/ire/tree"
)

// BuildMixturePayload converts an mwu.Result into the mixture.json shape.
func BuildMixturePayload(graphPath string, cfg mwu.Config, res *mwu.Result) MixturePayload {
	trees := make([]TreeRecord, len(res.Trees))
	for i, rec := range res.Trees {
		trees[i] = toJSONTree(rec)
	}

	return MixturePayload{
		Graph:      graphPath,
		Iters:      cfg.Iterations,
		Candidates: cfg.Candidates,
		Seed:       cfg.Seed,
		Alpha:      res.Alpha,
		Trees:      trees,
	}
}

func toJSONTree(rec mwu.TreeRecord) TreeRecord {
	edges := make([]EdgePair, len(rec.Edges))
	for i, e := range rec.Edges {
		edges[i] = EdgePair{e.Parent, e.Child}
	}

	return TreeRecord{Root: rec.Root, Edges: edges, Count: rec.Count, Prob: rec.Prob}
}

// CriticalEdges returns the top-k graph edges by expected congestion
// descending.
func CriticalEdges(g *graph.Graph, ec map[graph.EdgeKey]float64, topK int) []CriticalEdge {
	edges := g.Edges()
	out := make([]CriticalEdge, 0, len(edges))
	for _, e := range edges {
		out = append(out, CriticalEdge{
			Edge:               EdgePair{e.U, e.V},
			Capacity:           e.Capacity,
			ExpectedCongestion: ec[e.Key()],
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExpectedCongestion > out[j].ExpectedCongestion
	})
	if topK >= 0 && topK < len(out) {
		out = out[:topK]
	}

	return out
}

// AssembleReport builds the full report.json payload: graph summary,
// parameters, mixture summary, top critical edges by EC, and the
// globally-sorted top bottleneck cuts across every tree in the mixture.
func AssembleReport(g *graph.Graph, trees []mwu.TreeRecord, ec map[graph.EdgeKey]float64, params Parameters) (*Payload, error) {
	jsonTrees := make([]TreeRecord, len(trees))
	totalSamples := 0
	for i, rec := range trees {
		jsonTrees[i] = toJSONTree(rec)
		totalSamples += rec.Count
	}

	allCuts, err := collectCuts(g, trees)
	if err != nil {
		return nil, err
	}

	return &Payload{
		Graph:      GraphSummary{Nodes: g.NumVertices(), Edges: g.NumEdges()},
		Parameters: params,
		Mixture: MixtureSummary{
			UniqueTrees:  len(trees),
			TotalSamples: totalSamples,
			Trees:        jsonTrees,
		},
		CriticalEdges:  CriticalEdges(g, ec, topKCriticalEdges),
		BottleneckCuts: boundCuts(allCuts, topKBottleneckCuts),
	}, nil
}

// Recompute re-derives expected congestion and bottleneck cuts from a
// stored MixturePayload, weighting each tree's congestion contribution by
// count/total_samples, without re-running the MWU driver.
func Recompute(g *graph.Graph, mixture MixturePayload) (*Payload, error) {
	totalSamples := 0
	for _, t := range mixture.Trees {
		totalSamples += t.Count
	}

	ec := make(map[graph.EdgeKey]float64, g.NumEdges())
	for _, e := range g.Edges() {
		ec[e.Key()] = 0
	}

	records := make([]mwu.TreeRecord, len(mixture.Trees))
	for i, jt := range mixture.Trees {
		tr, err := rebuildTree(jt, g.Vertices())
		if err != nil {
			return nil, err
		}
		records[i] = mwu.TreeRecord{Root: jt.Root, Edges: tr.Edges(), Count: jt.Count, Prob: jt.Prob}

		l := lca.Build(tr)
		cT := congestion.TreeCapacities(g, tr, l)
		cong, err := congestion.EdgeCongestion(g, l, cT)
		if err != nil {
			return nil, err
		}

		weight := 0.0
		if totalSamples > 0 {
			weight = float64(jt.Count) / float64(totalSamples)
		}
		for k, v := range cong {
			ec[k] += weight * v
		}
	}

	return AssembleReport(g, records, ec, Parameters{
		Iters:      mixture.Iters,
		Candidates: mixture.Candidates,
		Seed:       mixture.Seed,
		Alpha:      mixture.Alpha,
	})
}

// collectCuts extracts every tree-edge-induced cut across all trees in
// the mixture, unsorted (sorting happens once, globally, in boundCuts).
func collectCuts(g *graph.Graph, trees []mwu.TreeRecord) ([]cuts.Cut, error) {
	var all []cuts.Cut
	for _, rec := range trees {
		tr, err := tree.New(rec.Root, parentMapOf(rec))
		if err != nil {
			return nil, err
		}
		all = append(all, cuts.ExtractTreeCuts(g, tr, -1)...)
	}

	return all, nil
}

func parentMapOf(rec mwu.TreeRecord) map[string]string {
	parent := make(map[string]string, len(rec.Edges))
	for _, e := range rec.Edges {
		parent[e.Child] = e.Parent
	}

	return parent
}

func rebuildTree(jt TreeRecord, allVertices []string) (*tree.Tree, error) {
	parent := make(map[string]string, len(jt.Edges))
	for _, e := range jt.Edges {
		parent[e[1]] = e[0]
	}
	for _, v := range allVertices {
		if v == jt.Root {
			continue
		}
		if _, ok := parent[v]; !ok {
			parent[v] = jt.Root
		}
	}

	return tree.New(jt.Root, parent)
}

// boundCuts sorts cuts by capacity ascending across the whole mixture
// (not per tree) before truncating to topK, capping each entry's node
// list at maxCutNodes with a truncated flag.
func boundCuts(all []cuts.Cut, topK int) []BottleneckCut {
	sort.SliceStable(all, func(i, j int) bool { return all[i].Capacity < all[j].Capacity })
	if topK >= 0 && topK < len(all) {
		all = all[:topK]
	}

	out := make([]BottleneckCut, len(all))
	for i, c := range all {
		nodes := c.Nodes
		truncated := len(nodes) > maxCutNodes
		if truncated {
			nodes = nodes[:maxCutNodes]
		}
		out[i] = BottleneckCut{
			Edge:      EdgePair{c.Edge.Parent, c.Edge.Child},
			Capacity:  c.Capacity,
			Nodes:     nodes,
			Truncated: truncated,
		}
	}

	return out
}
