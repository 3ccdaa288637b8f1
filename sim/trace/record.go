// Package trace provides decision-trace recording for cache behavior
// analysis. This package has no dependencies on sim/ — it stores pure data types.
package trace

// RequestRecord captures the outcome of a single routed request.
type RequestRecord struct {
	Index     int // position in the request stream
	EdgeID    int // edge cache the request was routed to
	ContentID int
	Hit       bool
	LatencyMs float64
}

// EvictionRecord captures a single eviction decision.
type EvictionRecord struct {
	EdgeID   int
	VictimID int
	Policy   string
}
