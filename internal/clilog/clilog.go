// Package clilog is the CLI's minimal stage-progress writer: a plain
// log.Logger wrapper, matching the ambient texture of the retrieval
// pack's tools (none of them pull in a structured-logging library; see
// DESIGN.md).
package clilog

import (
	"fmt"
	"io"
	"log"
)

// Logger prints timestamp-free stage lines to an underlying io.Writer.
type Logger struct {
	l *log.Logger
}

// New returns a Logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{l: log.New(w, "", 0)}
}

// Stage announces the start of a named pipeline stage.
func (lg *Logger) Stage(name string) {
	lg.l.Println(name)
}

// Graph reports the loaded graph's size and derived alpha, mirroring the
// reference pipeline's "Graph: N nodes, E edges. alpha=..." banner.
func (lg *Logger) Graph(nodes, edges int, alpha float64) {
	lg.l.Println(fmt.Sprintf("graph: %d nodes, %d edges, alpha=%.4f", nodes, edges, alpha))
}

// Wrote reports that path was written successfully.
func (lg *Logger) Wrote(path string) {
	lg.l.Println(fmt.Sprintf("wrote %s", path))
}
