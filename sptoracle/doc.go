// Package sptoracle computes a shortest-path tree (SPT) from a root vertex
// under caller-supplied edge lengths, using Dijkstra's algorithm.
//
// Complexity:
//
//   - Time:  O((V + E) log V), via a container/heap min-heap and a
//     lazy-decrease-key strategy (stale heap entries are skipped on pop).
//   - Space: O(V + E)
//
// Tie-break: when several predecessors reach a vertex v at the identical
// shortest distance, the one popped from the heap first is kept. v's
// recorded predecessor is only overwritten on a strict distance
// improvement, and the heap pops by (distance from root, label), so a
// predecessor closer to the root wins; among predecessors that are
// themselves equally far from the root, the lexicographically smaller
// label wins. The result is reproducible for identical inputs.
package sptoracle
