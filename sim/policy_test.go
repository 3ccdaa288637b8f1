package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePolicy_KnownNames(t *testing.T) {
	tests := []struct {
		name string
		want Policy
	}{
		{"LRU", PolicyLRU},
		{"lru", PolicyLRU},
		{"Lfu", PolicyLFU},
		{"RANDOM", PolicyRandom},
		{"random", PolicyRandom},
		{" LRU ", PolicyLRU},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePolicy(tt.name), "ParsePolicy(%q)", tt.name)
	}
}

func TestParsePolicy_UnknownNamesFallBackToRandom(t *testing.T) {
	for _, name := range []string{"FIFO", "fifo", "CLOCK", "", "nocache"} {
		assert.Equal(t, PolicyRandom, ParsePolicy(name), "ParsePolicy(%q)", name)
	}
}

func TestLRUPolicy_VictimIsLeastRecentlyUsed(t *testing.T) {
	p := newLRUPolicy(3)
	p.OnAdmit(1)
	p.OnAdmit(2)
	p.OnAdmit(3)
	p.OnHit(1) // recency order is now 2, 3, 1

	assert.Equal(t, 2, p.SelectVictim())
	assert.Equal(t, 3, p.SelectVictim())
	assert.Equal(t, 1, p.SelectVictim())
}

func TestLFUPolicy_VictimIsLeastFrequentlyUsed(t *testing.T) {
	p := newLFUPolicy(3)
	p.OnAdmit(1)
	p.OnHit(1)
	p.OnHit(1)
	p.OnAdmit(2)
	p.OnHit(2)
	p.OnAdmit(3)

	// Frequencies: 1 -> 3, 2 -> 2, 3 -> 1
	assert.Equal(t, 3, p.SelectVictim())
	assert.Equal(t, 2, p.SelectVictim())
	assert.Equal(t, 1, p.SelectVictim())
}

func TestLFUPolicy_TieBreaksTowardLowestID(t *testing.T) {
	p := newLFUPolicy(4)
	p.OnAdmit(7)
	p.OnAdmit(3)
	p.OnAdmit(9)
	// All frequency 1: victims come out in id order.
	assert.Equal(t, 3, p.SelectVictim())
	assert.Equal(t, 7, p.SelectVictim())
	assert.Equal(t, 9, p.SelectVictim())
}

func TestRandomPolicy_VictimIsResidentAndDeterministicUnderSeed(t *testing.T) {
	victims := func(seed int64) []int {
		p := newRandomPolicy(rand.New(rand.NewSource(seed)))
		for id := 1; id <= 10; id++ {
			p.OnAdmit(id)
		}
		out := make([]int, 0, 10)
		for i := 0; i < 10; i++ {
			out = append(out, p.SelectVictim())
		}
		return out
	}

	first := victims(42)
	second := victims(42)
	assert.Equal(t, first, second, "same seed must select the same victims")

	seen := make(map[int]bool)
	for _, v := range first {
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 10)
		assert.False(t, seen[v], "victim %d evicted twice", v)
		seen[v] = true
	}
}
