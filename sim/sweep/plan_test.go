package sweep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgesim/edgesim/sim"
)

func writePlan(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadPlan_FullPlan(t *testing.T) {
	path := writePlan(t, `
experiment: zipf
output: results/custom.csv
base:
  n_contents: 500
  n_requests: 50000
  seed: 7
alphas: [0.5, 1.5]
policies: [LRU, NOCACHE]
`)

	plan, err := LoadPlan(path)
	require.NoError(t, err)

	assert.Equal(t, "zipf", plan.Experiment)
	assert.Equal(t, "results/custom.csv", plan.Output)
	assert.Equal(t, []float64{0.5, 1.5}, plan.Alphas)
	assert.Equal(t, []string{"LRU", "NOCACHE"}, plan.Policies)
	require.NotNil(t, plan.Base.Seed)
	assert.Equal(t, int64(7), *plan.Base.Seed)
}

func TestLoadPlan_MissingExperiment(t *testing.T) {
	path := writePlan(t, "output: results/x.csv\n")
	_, err := LoadPlan(path)
	assert.Error(t, err)
}

func TestLoadPlan_MissingFile(t *testing.T) {
	_, err := LoadPlan(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestPlanBuild_OverridesBaseAndGrid(t *testing.T) {
	seed := int64(7)
	plan := Plan{
		Experiment: "cache-size",
		Base: BaseConfig{
			NContents: 500,
			NRequests: 50000,
			Seed:      &seed,
		},
		CacheSizes: []int{10},
		Policies:   []string{"LFU"},
	}

	exp, err := plan.Build()
	require.NoError(t, err)
	require.Len(t, exp.Points, 1)

	cfg := exp.Points[0].Config
	assert.Equal(t, 500, cfg.NContents)
	assert.Equal(t, 50000, cfg.NRequests)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 10, cfg.Capacity)
	assert.Equal(t, "LFU", cfg.Policy)

	// untouched fields keep defaults
	defaults := sim.DefaultConfig()
	assert.Equal(t, defaults.NEdges, cfg.NEdges)
	assert.Equal(t, defaults.LatEdgeMs, cfg.LatEdgeMs)
	assert.Equal(t, defaults.LatOriginMs, cfg.LatOriginMs)
}

func TestPlanBuild_EmptyGridsUseDefaults(t *testing.T) {
	plan := Plan{Experiment: "edge-count"}

	exp, err := plan.Build()
	require.NoError(t, err)
	assert.Len(t, exp.Points, len(DefaultEdgeCounts)*len(DefaultEdgeCountPolicies))
}

func TestPlanBuild_UnknownExperiment(t *testing.T) {
	plan := Plan{Experiment: "bandwidth"}
	_, err := plan.Build()
	assert.Error(t, err)
}
