// File: types.go
// Role: JSON-shaped types for mixture.json and report.json.
package report

// EdgePair is an ["u","v"] JSON array, used for both oriented tree edges
// and unordered graph-edge references.
type EdgePair [2]string

// TreeRecord is one entry of mixture.json's "trees" array.
type TreeRecord struct {
	Root  string     `json:"root"`
	Edges []EdgePair `json:"edges"`
	Count int        `json:"count"`
	Prob  float64    `json:"prob"`
}

// MixturePayload is the full contents of mixture.json.
type MixturePayload struct {
	Graph      string       `json:"graph"`
	Iters      int          `json:"iters"`
	Candidates int          `json:"candidates"`
	Seed       int64        `json:"seed"`
	Alpha      float64      `json:"alpha"`
	Trees      []TreeRecord `json:"trees"`
}

// GraphSummary is report.json's "graph" field.
type GraphSummary struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}

// Parameters is report.json's "parameters" field.
type Parameters struct {
	Iters      int     `json:"iters"`
	Candidates int     `json:"candidates"`
	Seed       int64   `json:"seed"`
	Alpha      float64 `json:"alpha"`
}

// MixtureSummary is report.json's "mixture" field.
type MixtureSummary struct {
	UniqueTrees  int          `json:"unique_trees"`
	TotalSamples int          `json:"total_samples"`
	Trees        []TreeRecord `json:"trees"`
}

// CriticalEdge is one entry of report.json's "critical_edges" array.
type CriticalEdge struct {
	Edge               EdgePair `json:"edge"`
	Capacity           float64  `json:"capacity"`
	ExpectedCongestion float64  `json:"expected_congestion"`
}

// BottleneckCut is one entry of report.json's "bottleneck_cuts" array.
type BottleneckCut struct {
	Edge      EdgePair `json:"edge"`
	Capacity  float64  `json:"capacity"`
	Nodes     []string `json:"nodes"`
	Truncated bool     `json:"truncated"`
}

// Payload is the full contents of report.json.
type Payload struct {
	Graph          GraphSummary    `json:"graph"`
	Parameters     Parameters      `json:"parameters"`
	Mixture        MixtureSummary  `json:"mixture"`
	CriticalEdges  []CriticalEdge  `json:"critical_edges"`
	BottleneckCuts []BottleneckCut `json:"bottleneck_cuts"`
}

const (
	topKCriticalEdges  = 10
	topKBottleneckCuts = 10
	maxCutNodes        = 30
)
