// Package workload models content demand for the simulator: which content
// each request asks for, drawn from a Zipf popularity distribution.
package workload

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// ContentSampler draws content identifiers for a request stream.
type ContentSampler interface {
	// Sample returns a content id in 1..NumContents.
	Sample(rng *rand.Rand) int
}

// ZipfSampler draws content ids 1..n with probability proportional to
// 1/rank^alpha (rank 1 is most popular) using inverse CDF via binary search.
// Immutable after construction and reused across all sampling calls.
type ZipfSampler struct {
	contents []int     // content ids [1..n], rank order
	cdf      []float64 // cumulative probabilities (same length as contents)
}

// NewZipfSampler builds the popularity CDF for nContents ranks with skew
// alpha. alpha <= 0 degrades toward uniform; very large alpha concentrates
// mass almost entirely on rank 1.
func NewZipfSampler(nContents int, alpha float64) (*ZipfSampler, error) {
	if nContents < 1 {
		return nil, fmt.Errorf("zipf sampler requires n_contents >= 1, got %d", nContents)
	}

	weights := make([]float64, nContents)
	total := 0.0
	for i := 0; i < nContents; i++ {
		w := 1.0 / math.Pow(float64(i+1), alpha)
		weights[i] = w
		total += w
	}

	contents := make([]int, nContents)
	cdf := make([]float64, nContents)
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w / total
		contents[i] = i + 1
		cdf[i] = cumulative
	}
	// Pin the last entry so floating-point rounding can never leave a gap
	// above the final cumulative value.
	cdf[nContents-1] = 1.0

	return &ZipfSampler{contents: contents, cdf: cdf}, nil
}

// Sample draws one content id. The smallest index whose cumulative
// probability covers the uniform draw wins; the index is clamped so a draw
// past the last entry (floating-point edge) still returns a valid id.
func (z *ZipfSampler) Sample(rng *rand.Rand) int {
	u := rng.Float64()
	idx := sort.SearchFloat64s(z.cdf, u)
	if idx >= len(z.contents) {
		idx = len(z.contents) - 1
	}
	return z.contents[idx]
}

// NumContents returns the size of the content universe.
func (z *ZipfSampler) NumContents() int {
	return len(z.contents)
}

// Prob returns the probability mass assigned to the given rank (1-based).
func (z *ZipfSampler) Prob(rank int) float64 {
	if rank < 1 || rank > len(z.cdf) {
		return 0.0
	}
	if rank == 1 {
		return z.cdf[0]
	}
	return z.cdf[rank-1] - z.cdf[rank-2]
}

// CDF returns the cumulative probability at the given rank (1-based).
func (z *ZipfSampler) CDF(rank int) float64 {
	if rank < 1 {
		return 0.0
	}
	if rank > len(z.cdf) {
		rank = len(z.cdf)
	}
	return z.cdf[rank-1]
}
