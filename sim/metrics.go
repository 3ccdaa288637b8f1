package sim

import (
	"fmt"
	"math"
	"sort"
)

// Metrics aggregates statistics about one simulation run for final
// reporting. Immutable once returned; nothing else survives the run.
type Metrics struct {
	HitRatio     float64 // hits / requests (0 when the stream is empty)
	MissRatio    float64 // misses / requests
	AvgLatencyMs float64 // mean simulated latency across all requests
	P95LatencyMs float64 // nearest-rank 95th percentile of the latency sequence
	OriginLoad   int     // number of origin fetches (= miss count)
}

// Print displays aggregated metrics at the end of the simulation.
func (m Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Hit Ratio        : %.4f\n", m.HitRatio)
	fmt.Printf("Miss Ratio       : %.4f\n", m.MissRatio)
	fmt.Printf("Average Latency  : %.2f ms\n", m.AvgLatencyMs)
	fmt.Printf("p95 Latency      : %.2f ms\n", m.P95LatencyMs)
	fmt.Printf("Origin Load      : %d fetches\n", m.OriginLoad)
}

// Mean is a util function that calculates the mean of a data list.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// PercentileNearestRank calculates the p-th percentile of a data list using
// the nearest-rank method: the value at index ceil(p/100*n)-1 of the sorted
// data, clamped to valid bounds. Returns 0 for an empty list.
func PercentileNearestRank(data []float64, p float64) float64 {
	n := len(data)
	if n == 0 {
		return 0.0
	}

	sorted := make([]float64, n)
	copy(sorted, data)
	sort.Float64s(sorted)

	idx := int(math.Ceil(p/100.0*float64(n))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	return sorted[idx]
}
