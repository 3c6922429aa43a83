// Package graph provides an immutable, capacitated, undirected graph.
//
// A Graph is assembled once via Builder (merging duplicate edges and
// rejecting self-loops and non-positive capacities) and never mutated
// afterward, so read access from multiple goroutines — the MWU driver's
// parallel candidate evaluation — needs no locking.
package graph
