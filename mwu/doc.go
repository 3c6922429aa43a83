// Package mwu implements the multiplicative-weights-update driver that
// approximates a minimum-congestion spanning-tree mixture.
//
// Each iteration: normalize edge weights into a probability distribution,
// derive per-edge lengths (p/capacity), sample R candidate roots, build a
// shortest-path tree and score its congestion for each, keep the
// minimum-objective candidate, update weights, and accumulate the chosen
// tree into a signature-keyed mixture.
//
// Candidate evaluation within one iteration is embarrassingly parallel
// (see Option WithWorkers); iterations themselves are strictly sequential
// because each one's weight update feeds the next.
package mwu
