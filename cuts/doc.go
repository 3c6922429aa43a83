// Package cuts extracts candidate bottleneck cuts from a tree: for each
// tree edge, the cut separating its child's subtree from the rest of the
// graph, with its exact capacity.
package cuts
