package sim

import (
	"math/rand"
	"strings"

	"github.com/sirupsen/logrus"
)

// Policy identifies a cache replacement policy variant.
type Policy string

const (
	PolicyLRU    Policy = "LRU"
	PolicyLFU    Policy = "LFU"
	PolicyRandom Policy = "RANDOM"
)

// ParsePolicy normalizes a policy name (case-insensitive). Unknown names —
// including the "FIFO" label some sweep grids carry — degrade to RANDOM
// rather than failing the run: a mislabeled policy costs hit ratio, not
// correctness.
func ParsePolicy(name string) Policy {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "LRU":
		return PolicyLRU
	case "LFU":
		return PolicyLFU
	case "RANDOM":
		return PolicyRandom
	default:
		logrus.Warnf("unknown eviction policy %q, falling back to RANDOM", name)
		return PolicyRandom
	}
}

// EvictionPolicy tracks replacement metadata for the contents resident in one
// edge cache. Implementations own exactly the state their policy needs; the
// cache keeps residency and metadata in sync by calling OnAdmit for every
// admission, OnHit for every hit, and SelectVictim for every eviction.
type EvictionPolicy interface {
	// OnHit records an access to a resident content id.
	OnHit(id int)

	// OnAdmit records the admission of a content id that was not resident.
	OnAdmit(id int)

	// SelectVictim picks the content to evict, removes it from the policy's
	// own metadata, and returns its id. Called only when at least one
	// content is resident.
	SelectVictim() int
}

// newEvictionPolicy builds concrete policy state for one edge cache.
// capacity must be > 0; rng drives RANDOM victim draws.
func newEvictionPolicy(p Policy, capacity int, rng *rand.Rand) EvictionPolicy {
	switch p {
	case PolicyLRU:
		return newLRUPolicy(capacity)
	case PolicyLFU:
		return newLFUPolicy(capacity)
	default:
		return newRandomPolicy(rng)
	}
}
