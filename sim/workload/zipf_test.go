package workload

import (
	"math"
	"math/rand"
	"testing"
)

func TestZipfSampler_CDFNormalized(t *testing.T) {
	tests := []struct {
		name      string
		nContents int
		alpha     float64
	}{
		{"single content", 1, 1.0},
		{"typical skew", 1000, 1.0},
		{"low skew", 1000, 0.6},
		{"zero alpha degrades to uniform", 100, 0.0},
		{"negative alpha", 100, -0.5},
		{"extreme skew", 1000, 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, err := NewZipfSampler(tt.nContents, tt.alpha)
			if err != nil {
				t.Fatal(err)
			}
			last := z.CDF(tt.nContents)
			if math.Abs(last-1.0) > 1e-9 {
				t.Errorf("final cumulative probability = %v, want 1.0 within 1e-9", last)
			}
		})
	}
}

func TestZipfSampler_ProbabilitiesSumToOne(t *testing.T) {
	z, err := NewZipfSampler(1000, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	sum := 0.0
	for rank := 1; rank <= 1000; rank++ {
		sum += z.Prob(rank)
	}
	if math.Abs(sum-1.0) > 1e-9 {
		t.Errorf("probabilities sum to %v, want 1.0 within 1e-9", sum)
	}
}

func TestZipfSampler_CDFMonotonic(t *testing.T) {
	z, err := NewZipfSampler(500, 0.8)
	if err != nil {
		t.Fatal(err)
	}
	for rank := 2; rank <= 500; rank++ {
		if z.CDF(rank) < z.CDF(rank-1) {
			t.Fatalf("cdf decreases at rank %d: %v < %v", rank, z.CDF(rank), z.CDF(rank-1))
		}
	}
}

func TestZipfSampler_RankProbabilitiesNonIncreasing(t *testing.T) {
	z, err := NewZipfSampler(200, 1.2)
	if err != nil {
		t.Fatal(err)
	}
	for rank := 2; rank <= 200; rank++ {
		if z.Prob(rank) > z.Prob(rank-1)+1e-12 {
			t.Fatalf("rank %d more probable than rank %d (%v > %v)", rank, rank-1, z.Prob(rank), z.Prob(rank-1))
		}
	}
}

func TestZipfSampler_ProbProportionalToInverseRank(t *testing.T) {
	// With alpha=1, p(1)/p(2) must be exactly 2 up to floating error.
	z, err := NewZipfSampler(10, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	ratio := z.Prob(1) / z.Prob(2)
	if math.Abs(ratio-2.0) > 1e-9 {
		t.Errorf("p(1)/p(2) = %v, want 2.0", ratio)
	}
}

func TestZipfSampler_SamplingConvergence(t *testing.T) {
	// 1e6 draws with n=1000, alpha=1: rank 1's empirical frequency must be
	// within 5% of its theoretical probability.
	rng := rand.New(rand.NewSource(42))
	z, err := NewZipfSampler(1000, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	n := 1000000
	rank1 := 0
	for i := 0; i < n; i++ {
		if z.Sample(rng) == 1 {
			rank1++
		}
	}

	want := z.Prob(1)
	got := float64(rank1) / float64(n)
	if math.Abs(got-want)/want > 0.05 {
		t.Errorf("rank 1 empirical frequency = %v, want %v within 5%%", got, want)
	}
}

func TestZipfSampler_SamplesInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	z, err := NewZipfSampler(50, 0.6)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10000; i++ {
		id := z.Sample(rng)
		if id < 1 || id > 50 {
			t.Fatalf("sample %d: id %d outside [1, 50]", i, id)
		}
	}
}

func TestZipfSampler_SingleContentAlwaysReturnsOne(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	z, err := NewZipfSampler(1, 2.0)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		if id := z.Sample(rng); id != 1 {
			t.Fatalf("sample %d: got %d, want 1", i, id)
		}
	}
}

func TestZipfSampler_HighAlphaConcentratesOnRankOne(t *testing.T) {
	z, err := NewZipfSampler(1000, 10.0)
	if err != nil {
		t.Fatal(err)
	}
	if z.Prob(1) < 0.99 {
		t.Errorf("p(1) = %v with alpha=10, want > 0.99", z.Prob(1))
	}
}

func TestZipfSampler_InvalidNContents(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := NewZipfSampler(n, 1.0); err == nil {
			t.Errorf("NewZipfSampler(%d, 1.0) succeeded, want error", n)
		}
	}
}
