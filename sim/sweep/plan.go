package sweep

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/edgesim/edgesim/sim"
)

// Plan is a YAML-configurable sweep description. Grid fields left empty keep
// the built-in defaults for the chosen experiment; base fields left at their
// zero value keep sim.DefaultConfig values.
type Plan struct {
	Experiment string     `yaml:"experiment"`
	Output     string     `yaml:"output,omitempty"`
	Base       BaseConfig `yaml:"base,omitempty"`
	CacheSizes []int      `yaml:"cache_sizes,omitempty"`
	EdgeCounts []int      `yaml:"edge_counts,omitempty"`
	Alphas     []float64  `yaml:"alphas,omitempty"`
	Policies   []string   `yaml:"policies,omitempty"`
}

// BaseConfig mirrors sim.Config with YAML tags. Zero-valued fields fall back
// to sim.DefaultConfig, so a plan only states what it changes.
type BaseConfig struct {
	NContents   int     `yaml:"n_contents,omitempty"`
	NEdges      int     `yaml:"n_edges,omitempty"`
	Capacity    int     `yaml:"capacity,omitempty"`
	Alpha       float64 `yaml:"alpha,omitempty"`
	Policy      string  `yaml:"policy,omitempty"`
	NRequests   int     `yaml:"n_requests,omitempty"`
	LatEdgeMs   float64 `yaml:"lat_edge_ms,omitempty"`
	LatOriginMs float64 `yaml:"lat_origin_ms,omitempty"`
	Seed        *int64  `yaml:"seed,omitempty"`
}

// LoadPlan reads and parses a sweep plan from a YAML file.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("failed to read sweep plan: %w", err)
	}
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return Plan{}, fmt.Errorf("failed to parse sweep plan: %w", err)
	}
	if plan.Experiment == "" {
		return Plan{}, fmt.Errorf("sweep plan %s does not name an experiment", path)
	}
	return plan, nil
}

// resolveBase merges the plan's base overrides onto the defaults.
func (p Plan) resolveBase() sim.Config {
	cfg := sim.DefaultConfig()
	b := p.Base
	if b.NContents != 0 {
		cfg.NContents = b.NContents
	}
	if b.NEdges != 0 {
		cfg.NEdges = b.NEdges
	}
	if b.Capacity != 0 {
		cfg.Capacity = b.Capacity
	}
	if b.Alpha != 0 {
		cfg.Alpha = b.Alpha
	}
	if b.Policy != "" {
		cfg.Policy = b.Policy
	}
	if b.NRequests != 0 {
		cfg.NRequests = b.NRequests
	}
	if b.LatEdgeMs != 0 {
		cfg.LatEdgeMs = b.LatEdgeMs
	}
	if b.LatOriginMs != 0 {
		cfg.LatOriginMs = b.LatOriginMs
	}
	if b.Seed != nil {
		cfg.Seed = *b.Seed
	}
	return cfg
}

// Build expands the plan into a concrete experiment grid.
func (p Plan) Build() (Experiment, error) {
	base := p.resolveBase()

	switch p.Experiment {
	case "cache-size":
		sizes := p.CacheSizes
		if len(sizes) == 0 {
			sizes = DefaultCacheSizes
		}
		policies := p.Policies
		if len(policies) == 0 {
			policies = DefaultCacheSizePolicies
		}
		return CacheSizeExperiment(base, sizes, policies), nil
	case "edge-count":
		counts := p.EdgeCounts
		if len(counts) == 0 {
			counts = DefaultEdgeCounts
		}
		policies := p.Policies
		if len(policies) == 0 {
			policies = DefaultEdgeCountPolicies
		}
		return EdgeCountExperiment(base, counts, policies), nil
	case "zipf":
		alphas := p.Alphas
		if len(alphas) == 0 {
			alphas = DefaultAlphas
		}
		policies := p.Policies
		if len(policies) == 0 {
			policies = DefaultZipfPolicies
		}
		return ZipfExperiment(base, alphas, policies), nil
	default:
		return Experiment{}, fmt.Errorf("unknown experiment %q (want cache-size, edge-count, or zipf)", p.Experiment)
	}
}
