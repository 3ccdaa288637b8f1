// Package sim provides the core simulation engine for edgesim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - edge.go: the EdgeCache state machine (hit/miss paths, admission, eviction)
//   - policy.go: the EvictionPolicy interface and policy name handling
//   - simulator.go: the request loop and metric aggregation
//
// # Architecture
//
// One Simulator owns everything a run needs and discards it on return:
//   - sim/workload/: Zipf content popularity model and inverse-CDF sampling
//   - sim/trace/: optional request/eviction decision recording
//   - sim/sweep/: parameter grids, concurrent sweep execution, CSV results
//
// Randomness is never process-global. Each run derives isolated RNG streams
// from its master seed via PartitionedRNG (rng.go), so identical seed plus
// identical configuration reproduces identical Metrics, and concurrent runs
// never interfere.
package sim
