// File: types.go
// Role: Config, Options, sentinel errors, and output types for the MWU driver.
package mwu

import (
	"errors"

	"github.com/irespan/ire/graph"
	"github.com/irespan/ire/tree"
)

// Sentinel errors returned by Fit.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to Fit.
	ErrNilGraph = errors.New("mwu: graph is nil")

	// ErrEmptyGraph indicates a graph with no vertices.
	ErrEmptyGraph = errors.New("mwu: graph has no vertices")

	// ErrInvalidIterations indicates Iterations <= 0.
	ErrInvalidIterations = errors.New("mwu: iterations must be positive")

	// ErrInvalidCandidates indicates Candidates <= 0.
	ErrInvalidCandidates = errors.New("mwu: candidates must be positive")

	// ErrCanceled indicates the run was canceled between iterations; the
	// partial mixture and EC accumulated so far are discarded.
	ErrCanceled = errors.New("mwu: canceled")
)

// Config holds the MWU driver's run parameters. Iterations, Candidates and
// LearningRate have zero values that are NOT sensible defaults (Fit
// rejects zero Iterations or Candidates) — callers should start from
// DefaultConfig and override only what they need.
type Config struct {
	// Iterations is N, the number of MWU rounds.
	Iterations int

	// Candidates is R, the number of candidate roots sampled per round.
	Candidates int

	// LearningRate is η, the MWU update rate.
	LearningRate float64

	// Seed drives the deterministic candidate-root sampling stream.
	Seed int64
}

// DefaultConfig returns the ire CLI's default run parameters: 80
// iterations, 8 candidates, η=0.6, seed=0.
func DefaultConfig() Config {
	return Config{
		Iterations:   80,
		Candidates:   8,
		LearningRate: 0.6,
		Seed:         0,
	}
}

// Option configures a Runner beyond Config's run parameters.
type Option func(*Runner)

// WithWorkers sets the number of goroutines used to evaluate the R
// per-iteration candidates concurrently — evaluating each candidate root
// is a pure function of the current weights, so it parallelizes freely.
// n <= 1 evaluates candidates sequentially in the calling goroutine.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.workers = n
	}
}

// TreeRecord is one entry of the output mixture: a tree sampled during
// the run, how many iterations selected it, and its normalized
// probability.
type TreeRecord struct {
	Root  string
	Edges []tree.OrientedEdge // oriented (parent, child), tree.New's Edges() order
	Count int
	Prob  float64
}

// Result is Fit's output: the mixture (sorted by Count descending) and
// the accumulated expected-congestion map.
type Result struct {
	Trees []TreeRecord
	EC    map[graph.EdgeKey]float64
	Alpha float64
}
