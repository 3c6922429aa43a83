// Package ioedge loads the edge-list input format: one edge per
// non-empty, non-comment line, each exactly three whitespace-separated
// tokens "u v w". Duplicate unordered pairs are merged by summing
// capacity via graph.Builder.
package ioedge
