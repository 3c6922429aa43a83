// File: mwu.go
// Role: Runner, Fit (the MWU iteration loop), candidate sampling and
// parallel evaluation, weight update, mixture signature bookkeeping.
package mwu

import (
	"context"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/irespan/ire/congestion"
	"github.com/irespan/ire/graph"
	"github.com/irespan/ire/internal/rng"
	"github.com/irespan/ire/lca"
	"github.com/irespan/ire/sptoracle"
	"github.com/irespan/ire/tree"
)

// maxExponent bounds |η·(cong/α−1)| to avoid exp overflow/underflow.
const maxExponent = 50

// rescaleThreshold triggers a uniform W /= max rescale once any weight
// grows past it — a second, cheap line of defense alongside exponent
// clamping; uniform rescaling preserves the ratios between weights, so
// it never changes which candidate the next iteration would pick.
const rescaleThreshold = 1e150

// Runner drives repeated Fit calls with a fixed worker count.
type Runner struct {
	cfg     Config
	workers int
	g       *graph.Graph
}

// New constructs a Runner. Default worker count is 1 (sequential
// candidate evaluation); use WithWorkers to parallelize.
func New(cfg Config, opts ...Option) *Runner {
	r := &Runner{cfg: cfg, workers: 1}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Fit runs the MWU loop over g and returns the resulting tree mixture and
// expected-congestion accumulator. ctx is checked once per iteration
// boundary; on cancellation the partial mixture and EC are discarded and
// ErrCanceled is returned.
func (r *Runner) Fit(ctx context.Context, g *graph.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.NumVertices() == 0 {
		return nil, ErrEmptyGraph
	}
	if r.cfg.Iterations <= 0 {
		return nil, ErrInvalidIterations
	}
	if r.cfg.Candidates <= 0 {
		return nil, ErrInvalidCandidates
	}

	r.g = g
	vertices := g.Vertices()
	alpha := 10 * math.Log2(float64(len(vertices))+1)

	edges := g.Edges()
	w := make(map[graph.EdgeKey]float64, len(edges))
	ec := make(map[graph.EdgeKey]float64, len(edges))
	for _, e := range edges {
		w[e.Key()] = 1
		ec[e.Key()] = 0
	}

	mixture := make(map[string]*TreeRecord)
	order := make([]string, 0)

	draw := rng.FromSeed(r.cfg.Seed)

	for iter := 0; iter < r.cfg.Iterations; iter++ {
		select {
		case <-ctx.Done():
			return nil, ErrCanceled
		default:
		}

		p, lengths := normalize(edges, w)

		roots := sampleRoots(draw, vertices, r.cfg.Candidates)
		outcomes, err := r.evaluateAll(roots, p, lengths)
		if err != nil {
			return nil, err
		}

		chosen := outcomes[0]
		for i := 1; i < len(outcomes); i++ {
			if outcomes[i].obj < chosen.obj {
				chosen = outcomes[i]
			}
		}

		updateWeights(edges, w, ec, chosen.cong, alpha, r.cfg.LearningRate, r.cfg.Iterations)
		rescale(w)

		sig := signature(chosen.tr)
		rec, ok := mixture[sig]
		if !ok {
			rec = &TreeRecord{Root: chosen.tr.Root(), Edges: chosen.tr.Edges()}
			mixture[sig] = rec
			order = append(order, sig)
		}
		rec.Count++
	}

	trees := make([]TreeRecord, 0, len(order))
	for _, sig := range order {
		rec := mixture[sig]
		rec.Prob = float64(rec.Count) / float64(r.cfg.Iterations)
		trees = append(trees, *rec)
	}
	sort.SliceStable(trees, func(i, j int) bool { return trees[i].Count > trees[j].Count })

	return &Result{Trees: trees, EC: ec, Alpha: alpha}, nil
}

// normalize computes p(e) = W(e)/ΣW and ℓ(e) = p(e)/capacity(e) for every
// graph edge.
func normalize(edges []graph.Edge, w map[graph.EdgeKey]float64) (p, lengths map[graph.EdgeKey]float64) {
	var total float64
	for _, v := range w {
		total += v
	}

	p = make(map[graph.EdgeKey]float64, len(edges))
	lengths = make(map[graph.EdgeKey]float64, len(edges))
	for _, e := range edges {
		k := e.Key()
		pe := w[k] / total
		p[k] = pe
		lengths[k] = pe / e.Capacity
	}

	return p, lengths
}

// sampleRoots draws r candidate roots from vertices, consuming exactly
// one random draw per candidate so the RNG stream's consumption pattern
// stays stable across runs: without replacement via a partial
// Fisher-Yates prefix when r <= len(vertices), with replacement
// otherwise.
func sampleRoots(draw randSource, vertices []string, r int) []string {
	n := len(vertices)
	out := make([]string, r)

	if r <= n {
		work := make([]string, n)
		copy(work, vertices)
		for i := 0; i < r; i++ {
			j := i + draw.Intn(n-i)
			work[i], work[j] = work[j], work[i]
			out[i] = work[i]
		}

		return out
	}

	for i := 0; i < r; i++ {
		out[i] = vertices[draw.Intn(n)]
	}

	return out
}

// randSource is the subset of *rand.Rand sampleRoots needs, narrowing the
// dependency to keep this function trivially testable.
type randSource interface {
	Intn(n int) int
}

// candidateOutcome is one candidate root's evaluation: its SPT, induced
// tree capacities' derived congestion map, and scalar objective.
type candidateOutcome struct {
	root string
	tr   *tree.Tree
	cong map[graph.EdgeKey]float64
	obj  float64
	err  error
}

func (r *Runner) evaluate(root string, p, lengths map[graph.EdgeKey]float64) candidateOutcome {
	tr, err := sptoracle.SPT(r.g, lengths, root)
	if err != nil {
		return candidateOutcome{root: root, err: err}
	}

	l := lca.Build(tr)
	cT := congestion.TreeCapacities(r.g, tr, l)
	cong, err := congestion.EdgeCongestion(r.g, l, cT)
	if err != nil {
		return candidateOutcome{root: root, err: err}
	}

	var obj float64
	for k, c := range cong {
		obj += p[k] * c
	}

	return candidateOutcome{root: root, tr: tr, cong: cong, obj: obj}
}

// evaluateAll scores every candidate root. With r.workers > 1 the R
// candidates are evaluated concurrently — each is a pure function of the
// immutable graph and the current p/lengths, so nothing needs to
// coordinate. Results are always indexed by candidate position so the
// minimum-objective, first-encountered tie-break is independent of
// completion order.
func (r *Runner) evaluateAll(roots []string, p, lengths map[graph.EdgeKey]float64) ([]candidateOutcome, error) {
	out := make([]candidateOutcome, len(roots))

	if r.workers <= 1 {
		for i, root := range roots {
			out[i] = r.evaluate(root, p, lengths)
		}
	} else {
		sem := make(chan struct{}, r.workers)
		var wg sync.WaitGroup
		for i, root := range roots {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int, root string) {
				defer wg.Done()
				defer func() { <-sem }()
				out[i] = r.evaluate(root, p, lengths)
			}(i, root)
		}
		wg.Wait()
	}

	for _, o := range out {
		if o.err != nil {
			return nil, o.err
		}
	}

	return out, nil
}

// updateWeights applies the multiplicative weight update to every graph
// edge using the chosen candidate's congestion map, and accumulates each
// edge's congestion contribution for this iteration into ec.
func updateWeights(edges []graph.Edge, w, ec map[graph.EdgeKey]float64, cong map[graph.EdgeKey]float64, alpha, eta float64, iterations int) {
	for _, e := range edges {
		k := e.Key()
		c := cong[k]

		exponent := eta * (c/alpha - 1)
		if exponent > maxExponent {
			exponent = maxExponent
		} else if exponent < -maxExponent {
			exponent = -maxExponent
		}

		w[k] *= math.Exp(exponent)
		ec[k] += c / float64(iterations)
	}
}

// rescale divides every weight by the current maximum once it exceeds
// rescaleThreshold; a no-op otherwise. Dividing every weight by the same
// value preserves their ratios, so it never affects which candidate
// wins a future iteration.
func rescale(w map[graph.EdgeKey]float64) {
	var max float64
	for _, v := range w {
		if v > max {
			max = v
		}
	}
	if max <= rescaleThreshold {
		return
	}
	for k := range w {
		w[k] /= max
	}
}

// signature canonicalizes a tree to a sorted, delimited string of its
// undirected edge keys, so two different roots spanning the same edge
// set collapse to one mixture entry.
func signature(t *tree.Tree) string {
	edges := t.Edges()
	keys := make([]string, len(edges))
	for i, e := range edges {
		k := graph.NewEdgeKey(e.Parent, e.Child)
		keys[i] = k.Lo + "\x00" + k.Hi
	}
	sort.Strings(keys)

	return strings.Join(keys, "\x1f")
}
