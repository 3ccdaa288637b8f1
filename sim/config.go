package sim

import "fmt"

// Default simulated service latencies in milliseconds.
const (
	DefaultLatEdgeMs   = 10.0
	DefaultLatOriginMs = 100.0
)

// Config groups the parameters of one simulation run.
type Config struct {
	NContents   int     // number of distinct contents; ids are 1..NContents, rank 1 most popular
	NEdges      int     // number of independent edge caches
	Capacity    int     // max resident contents per edge; 0 disables caching
	Alpha       float64 // Zipf skew; higher concentrates demand on low ranks, <= 0 degrades toward uniform
	Policy      string  // eviction policy name; unknown names fall back to RANDOM
	NRequests   int     // number of requests to simulate
	LatEdgeMs   float64 // simulated service latency on a cache hit
	LatOriginMs float64 // simulated service latency on an origin fetch
	Seed        int64   // master seed; same seed + same config reproduces identical Metrics
}

// DefaultConfig returns the baseline configuration the CLI flags and the
// built-in experiments start from.
func DefaultConfig() Config {
	return Config{
		NContents:   1000,
		NEdges:      4,
		Capacity:    100,
		Alpha:       1.0,
		Policy:      "LRU",
		NRequests:   200000,
		LatEdgeMs:   DefaultLatEdgeMs,
		LatOriginMs: DefaultLatOriginMs,
		Seed:        42,
	}
}

// Validate rejects statically invalid configurations before any simulation
// state is built. Capacity 0 (no caching) and NRequests 0 (empty stream) are
// valid degenerate setups; unknown policy names degrade in ParsePolicy and
// are not rejected here.
func (c Config) Validate() error {
	if c.NContents < 1 {
		return fmt.Errorf("n_contents must be >= 1, got %d", c.NContents)
	}
	if c.NEdges < 1 {
		return fmt.Errorf("n_edges must be >= 1, got %d", c.NEdges)
	}
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must be >= 0, got %d", c.Capacity)
	}
	if c.NRequests < 0 {
		return fmt.Errorf("n_requests must be >= 0, got %d", c.NRequests)
	}
	if c.LatEdgeMs < 0 {
		return fmt.Errorf("lat_edge_ms must be >= 0, got %v", c.LatEdgeMs)
	}
	if c.LatOriginMs < 0 {
		return fmt.Errorf("lat_origin_ms must be >= 0, got %v", c.LatOriginMs)
	}
	return nil
}
