// File: ioedge.go
// Role: Load parses an edge-list file into a *graph.Graph.
package ioedge

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/irespan/ire/graph"
)

// MalformedEdgeLineError reports a line that is not exactly three
// whitespace-separated tokens, or whose weight token does not parse as a
// finite non-negative decimal.
type MalformedEdgeLineError struct {
	Line int
	Text string
}

func (e *MalformedEdgeLineError) Error() string {
	return fmt.Sprintf("ioedge: malformed edge line %d: %q", e.Line, e.Text)
}

// Load reads an edge-list file at path and builds a *graph.Graph from it.
// Blank lines and lines beginning with "#" are skipped. Every other line
// must be "u v w" where w is a finite non-negative decimal; a zero weight
// then fails in graph.Builder with graph.ErrNonPositiveCapacity. Duplicate
// unordered pairs have their weights summed by graph.Builder.
func Load(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ioedge: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads the edge-list format from r (see Load for the grammar).
// Exposed separately so callers can parse from any io.Reader, not just a
// named file — useful for embedding the format in tests or other
// transports.
func Parse(r io.Reader) (*graph.Graph, error) {
	b := graph.NewBuilder()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, &MalformedEdgeLineError{Line: lineNo, Text: line}
		}

		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil || w < 0 || math.IsInf(w, 0) || math.IsNaN(w) {
			return nil, &MalformedEdgeLineError{Line: lineNo, Text: line}
		}

		if err := b.AddEdge(fields[0], fields[1], w); err != nil {
			return nil, fmt.Errorf("ioedge: line %d (%q): %w", lineNo, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ioedge: read: %w", err)
	}

	return b.Build()
}
