// File: types.go
// Role: sentinel errors for the SPT oracle.
package sptoracle

import "errors"

// Sentinel errors returned by SPT.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to SPT.
	ErrNilGraph = errors.New("sptoracle: graph is nil")

	// ErrEmptyRoot indicates an empty root label.
	ErrEmptyRoot = errors.New("sptoracle: root label is empty")

	// ErrVertexNotFound indicates root is absent from the graph.
	ErrVertexNotFound = errors.New("sptoracle: root vertex not found")

	// ErrMissingLength indicates an edge present in the graph has no entry
	// in the supplied lengths map.
	ErrMissingLength = errors.New("sptoracle: edge length missing for graph edge")

	// ErrNegativeLength indicates a supplied length is negative (Dijkstra
	// requires non-negative edge costs).
	ErrNegativeLength = errors.New("sptoracle: negative edge length")
)
