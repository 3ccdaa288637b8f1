package sweep

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/edgesim/edgesim/sim"
)

// Result pairs a grid point with its simulation metrics.
type Result struct {
	Point   Point
	Metrics sim.Metrics
}

// Runner executes experiment grids. Points run concurrently up to Parallel
// goroutines; results keep grid order and match a serial run exactly,
// because every sim.Run owns its RNG streams and shares no state.
type Runner struct {
	Parallel int // max concurrent runs; values < 1 mean serial
}

// Run executes every point of the experiment and returns results in grid
// order. The first failing point aborts the sweep.
func (r Runner) Run(exp Experiment) ([]Result, error) {
	results := make([]Result, len(exp.Points))

	limit := r.Parallel
	if limit < 1 {
		limit = 1
	}
	var g errgroup.Group
	g.SetLimit(limit)

	for i, point := range exp.Points {
		i, point := i, point
		g.Go(func() error {
			metrics, err := sim.Run(point.Config)
			if err != nil {
				return fmt.Errorf("sweep point %s=%s policy=%s: %w",
					exp.SweptColumn, point.SweptValue, point.Policy, err)
			}
			logrus.Debugf("sweep %s: %s=%s policy=%s hit_ratio=%.4f origin_load=%d",
				exp.Name, exp.SweptColumn, point.SweptValue, point.Policy,
				metrics.HitRatio, metrics.OriginLoad)
			results[i] = Result{Point: point, Metrics: metrics}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
