// Package lca implements binary-lifting lowest-common-ancestor queries
// with path-sum support over a tree.Tree.
//
// Table construction is O(V log V); each LCA or Dist query is O(log V).
// The ancestor table (up[k][v]) is built once and never changes; only the
// oriented-edge weighting (and its derived prefix sums) is mutable via
// SetEdgeWeights, so rebuilding weights for a freshly computed c_T does
// not require rebuilding the ancestor table.
package lca
