package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/edgesim/edgesim/sim"
	"github.com/edgesim/edgesim/sim/trace"
)

var (
	// CLI flags for a single simulation run
	nContents   int     // Size of the content universe (ids 1..N)
	nEdges      int     // Number of independent edge caches
	capacity    int     // Max resident contents per edge (0 = no caching)
	alpha       float64 // Zipf popularity skew
	policy      string  // Eviction policy (LRU, LFU, RANDOM; unknown -> RANDOM)
	nRequests   int     // Number of requests to simulate
	latEdgeMs   float64 // Simulated latency of a cache hit
	latOriginMs float64 // Simulated latency of an origin fetch
	seed        int64   // Master seed for reproducible runs
	traceLevel  string  // Decision trace verbosity
)

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single cache simulation and print its metrics",
	Run: func(cmd *cobra.Command, args []string) {
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level: %s", traceLevel)
		}

		cfg := sim.Config{
			NContents:   nContents,
			NEdges:      nEdges,
			Capacity:    capacity,
			Alpha:       alpha,
			Policy:      policy,
			NRequests:   nRequests,
			LatEdgeMs:   latEdgeMs,
			LatOriginMs: latOriginMs,
			Seed:        seed,
		}

		s, err := sim.NewSimulator(cfg)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		var st *trace.SimulationTrace
		if trace.TraceLevel(traceLevel) == trace.TraceLevelDecisions {
			st = trace.NewSimulationTrace(trace.TraceLevelDecisions)
			s.SetTrace(st)
		}

		logrus.Infof("Starting simulation: %d contents, %d edges, capacity=%d, alpha=%v, policy=%s, %d requests",
			nContents, nEdges, capacity, alpha, policy, nRequests)
		startTime := time.Now()

		metrics := s.Run()
		metrics.Print()

		if st != nil {
			logrus.Infof("Captured %d request records and %d eviction records",
				len(st.Requests), len(st.Evictions))
		}
		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// init sets up CLI flags for the run subcommand
func init() {
	defaults := sim.DefaultConfig()

	runCmd.Flags().IntVar(&nContents, "n-contents", defaults.NContents, "Number of distinct contents (ids 1..N, rank 1 most popular)")
	runCmd.Flags().IntVar(&nEdges, "n-edges", defaults.NEdges, "Number of independent edge caches")
	runCmd.Flags().IntVar(&capacity, "capacity", defaults.Capacity, "Max resident contents per edge (0 disables caching)")
	runCmd.Flags().Float64Var(&alpha, "alpha", defaults.Alpha, "Zipf popularity skew")
	runCmd.Flags().StringVar(&policy, "policy", defaults.Policy, "Eviction policy (LRU, LFU, RANDOM; unknown falls back to RANDOM)")
	runCmd.Flags().IntVar(&nRequests, "n-requests", defaults.NRequests, "Number of requests to simulate")
	runCmd.Flags().Float64Var(&latEdgeMs, "lat-edge-ms", defaults.LatEdgeMs, "Simulated latency of a cache hit (ms)")
	runCmd.Flags().Float64Var(&latOriginMs, "lat-origin-ms", defaults.LatOriginMs, "Simulated latency of an origin fetch (ms)")
	runCmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Seed for reproducible runs")
	runCmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Decision trace level (none, decisions)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
