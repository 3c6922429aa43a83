// Package tree implements rooted trees over an arbitrary vertex label set.
//
// A Tree is built once from a root label and a parent map via New, which
// performs a BFS reachability check (every vertex in the parent map must
// be reachable from root by following parent links) and computes depths
// and a BFS order in the same pass.
package tree
