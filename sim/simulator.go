package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/edgesim/edgesim/sim/trace"
	"github.com/edgesim/edgesim/sim/workload"
)

// Simulator drives one simulation run: it owns the Zipf popularity model,
// the edge caches, and the per-run RNG, and aggregates per-request outcomes
// into a Metrics record.
//
// A Simulator is single-use and single-threaded: construct, Run once,
// discard. The n edges are indexed instances visited by random selection,
// not concurrent actors, and no state crosses run boundaries.
type Simulator struct {
	cfg   Config
	rng   *PartitionedRNG
	zipf  *workload.ZipfSampler
	edges []*EdgeCache
	trace *trace.SimulationTrace

	hits      int
	misses    int
	latencies []float64
}

// NewSimulator validates cfg and builds the run's Zipf model and empty edge
// caches. Returns a configuration error before any simulation state exists.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}

	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))
	zipf, err := workload.NewZipfSampler(cfg.NContents, cfg.Alpha)
	if err != nil {
		return nil, err
	}

	policy := ParsePolicy(cfg.Policy)
	evictionRNG := rng.ForSubsystem(SubsystemEviction)
	edges := make([]*EdgeCache, cfg.NEdges)
	for i := range edges {
		edges[i] = NewEdgeCache(cfg.Capacity, policy, evictionRNG)
	}

	return &Simulator{
		cfg:       cfg,
		rng:       rng,
		zipf:      zipf,
		edges:     edges,
		latencies: make([]float64, 0, cfg.NRequests),
	}, nil
}

// SetTrace attaches a decision trace. When the trace level enables capture,
// every request routing and every eviction is recorded.
func (s *Simulator) SetTrace(st *trace.SimulationTrace) {
	s.trace = st
	if !st.Enabled() {
		return
	}
	policy := string(ParsePolicy(s.cfg.Policy))
	for i, edge := range s.edges {
		edgeID := i
		edge.SetEvictionHook(func(victim int) {
			st.RecordEviction(trace.EvictionRecord{
				EdgeID:   edgeID,
				VictimID: victim,
				Policy:   policy,
			})
		})
	}
}

// Run executes the sequential request loop and returns the aggregated
// Metrics. Each trial picks one edge uniformly at random, samples one
// content id from the Zipf model, and routes the request to that edge.
func (s *Simulator) Run() Metrics {
	edgeRNG := s.rng.ForSubsystem(SubsystemEdges)
	contentRNG := s.rng.ForSubsystem(SubsystemContent)

	for i := 0; i < s.cfg.NRequests; i++ {
		edgeIdx := edgeRNG.Intn(len(s.edges))
		contentID := s.zipf.Sample(contentRNG)

		hit, latency := s.edges[edgeIdx].Request(contentID, s.cfg.LatEdgeMs, s.cfg.LatOriginMs)

		s.latencies = append(s.latencies, latency)
		if hit {
			s.hits++
		} else {
			s.misses++
		}

		if s.trace.Enabled() {
			s.trace.RecordRequest(trace.RequestRecord{
				Index:     i,
				EdgeID:    edgeIdx,
				ContentID: contentID,
				Hit:       hit,
				LatencyMs: latency,
			})
		}
	}

	logrus.Debugf("simulated %d requests across %d edges: %d hits, %d misses",
		s.cfg.NRequests, len(s.edges), s.hits, s.misses)

	return s.metrics()
}

// metrics computes the final aggregate record. The divisor is clamped to 1
// so an empty request stream yields zero ratios instead of dividing by zero.
func (s *Simulator) metrics() Metrics {
	total := s.cfg.NRequests
	if total < 1 {
		total = 1
	}
	return Metrics{
		HitRatio:     float64(s.hits) / float64(total),
		MissRatio:    float64(s.misses) / float64(total),
		AvgLatencyMs: Mean(s.latencies),
		P95LatencyMs: PercentileNearestRank(s.latencies, 95),
		OriginLoad:   s.misses,
	}
}

// Run builds a Simulator for cfg and executes it. This is the single
// synchronous entry point the sweep and plot harnesses consume.
func Run(cfg Config) (Metrics, error) {
	s, err := NewSimulator(cfg)
	if err != nil {
		return Metrics{}, err
	}
	return s.Run(), nil
}
