// Package congestion computes, for a tree T over graph G, the induced
// tree capacity c_T of every tree edge and the congestion cong_T of every
// graph edge.
//
// TreeCapacities uses the LCA subtree-sum trick (O((V+E) log V) total:
// O(E log V) for the per-edge LCA lookups, O(V) for the reverse-BFS
// propagation) rather than O(V*E) direct path enumeration.
package congestion
