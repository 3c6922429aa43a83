package mwu_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/irespan/ire/graph"
	"github.com/irespan/ire/mwu"
)

// buildCycleGraphFor benches an n-vertex cycle with unit capacities.
func buildCycleGraphFor(b *testing.B, n int) *graph.Graph {
	b.Helper()
	bld := graph.NewBuilder()
	for i := 0; i < n; i++ {
		u := fmt.Sprintf("N%d", i)
		v := fmt.Sprintf("N%d", (i+1)%n)
		if err := bld.AddEdge(u, v, 1); err != nil {
			b.Fatalf("AddEdge: %v", err)
		}
	}
	g, err := bld.Build()
	if err != nil {
		b.Fatalf("Build: %v", err)
	}

	return g
}

// BenchmarkFit_Cycle50Sequential measures the MWU driver run sequentially
// (no worker pool) on a 50-vertex cycle.
func BenchmarkFit_Cycle50Sequential(b *testing.B) {
	g := buildCycleGraphFor(b, 50)
	cfg := mwu.Config{Iterations: 30, Candidates: 8, LearningRate: 0.6, Seed: 0}
	runner := mwu.New(cfg)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := runner.Fit(context.Background(), g); err != nil {
			b.Fatalf("Fit: %v", err)
		}
	}
}

// BenchmarkFit_Cycle50Parallel measures the same run with candidate
// evaluation spread across worker goroutines.
func BenchmarkFit_Cycle50Parallel(b *testing.B) {
	g := buildCycleGraphFor(b, 50)
	cfg := mwu.Config{Iterations: 30, Candidates: 8, LearningRate: 0.6, Seed: 0}
	runner := mwu.New(cfg, mwu.WithWorkers(4))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := runner.Fit(context.Background(), g); err != nil {
			b.Fatalf("Fit: %v", err)
		}
	}
}
