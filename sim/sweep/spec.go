// Package sweep runs the simulator over Cartesian parameter grids and
// persists one CSV row per grid point for later plotting.
package sweep

import (
	"fmt"
	"strconv"

	"github.com/edgesim/edgesim/sim"
)

// PolicyNoCache is a sweep-level pseudo-policy: it runs with capacity 0, so
// every request is an origin fetch. It is a grid label, not a core eviction
// policy.
const PolicyNoCache = "NOCACHE"

// Default grids for the built-in experiments.
var (
	DefaultCacheSizes        = []int{20, 50, 100, 200}
	DefaultCacheSizePolicies = []string{"LRU", "LFU", "RANDOM"}

	DefaultEdgeCounts        = []int{1, 2, 4, 8}
	DefaultEdgeCountPolicies = []string{PolicyNoCache, "LRU", "LFU", "FIFO", "RANDOM"}

	DefaultAlphas       = []float64{0.6, 0.8, 1.0, 1.2}
	DefaultZipfPolicies = []string{"LRU", "LFU", "RANDOM", PolicyNoCache}
)

// Point is one cell of a sweep grid: the swept value's label and the policy
// label as they appear in the output row, plus the fully resolved run config.
type Point struct {
	SweptValue string
	Policy     string
	Config     sim.Config
}

// Experiment is an ordered parameter grid evaluated against sim.Run.
type Experiment struct {
	Name        string
	SweptColumn string // CSV header of the swept parameter
	Points      []Point
}

// applyPolicy resolves a sweep policy label onto a run config. NOCACHE keeps
// the config's policy name but zeroes the capacity; everything else is passed
// through to the core (which sends unknown labels like FIFO to the RANDOM
// fallback).
func applyPolicy(cfg *sim.Config, policy string) {
	if policy == PolicyNoCache {
		cfg.Capacity = 0
		return
	}
	cfg.Policy = policy
}

// CacheSizeExperiment sweeps cache capacity over sizes x policies.
func CacheSizeExperiment(base sim.Config, sizes []int, policies []string) Experiment {
	exp := Experiment{Name: "cache-size", SweptColumn: "cache_size"}
	for _, size := range sizes {
		for _, policy := range policies {
			cfg := base
			cfg.Capacity = size
			applyPolicy(&cfg, policy)
			exp.Points = append(exp.Points, Point{
				SweptValue: strconv.Itoa(size),
				Policy:     policy,
				Config:     cfg,
			})
		}
	}
	return exp
}

// EdgeCountExperiment sweeps the number of edge caches over counts x policies.
func EdgeCountExperiment(base sim.Config, counts []int, policies []string) Experiment {
	exp := Experiment{Name: "edge-count", SweptColumn: "n_edges"}
	for _, count := range counts {
		for _, policy := range policies {
			cfg := base
			cfg.NEdges = count
			applyPolicy(&cfg, policy)
			exp.Points = append(exp.Points, Point{
				SweptValue: strconv.Itoa(count),
				Policy:     policy,
				Config:     cfg,
			})
		}
	}
	return exp
}

// ZipfExperiment sweeps the popularity skew over alphas x policies.
func ZipfExperiment(base sim.Config, alphas []float64, policies []string) Experiment {
	exp := Experiment{Name: "zipf", SweptColumn: "alpha"}
	for _, alpha := range alphas {
		for _, policy := range policies {
			cfg := base
			cfg.Alpha = alpha
			applyPolicy(&cfg, policy)
			exp.Points = append(exp.Points, Point{
				SweptValue: strconv.FormatFloat(alpha, 'g', -1, 64),
				Policy:     policy,
				Config:     cfg,
			})
		}
	}
	return exp
}

// BuiltinExperiment returns the named default experiment grid over base.
func BuiltinExperiment(name string, base sim.Config) (Experiment, error) {
	switch name {
	case "cache-size":
		return CacheSizeExperiment(base, DefaultCacheSizes, DefaultCacheSizePolicies), nil
	case "edge-count":
		return EdgeCountExperiment(base, DefaultEdgeCounts, DefaultEdgeCountPolicies), nil
	case "zipf":
		return ZipfExperiment(base, DefaultAlphas, DefaultZipfPolicies), nil
	default:
		return Experiment{}, fmt.Errorf("unknown experiment %q (want cache-size, edge-count, or zipf)", name)
	}
}
