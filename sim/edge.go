package sim

import "math/rand"

// EdgeCache simulates one edge node: a bounded set of resident content ids
// plus the replacement metadata of its eviction policy.
//
// Invariants: the resident set never exceeds capacity, and policy metadata
// exists only for resident ids — admission and eviction keep both in sync.
// An EdgeCache serves one request at a time and is not safe for concurrent
// use; the simulator visits its edges sequentially.
type EdgeCache struct {
	capacity int
	resident map[int]struct{}
	policy   EvictionPolicy
	onEvict  func(victim int)
}

// NewEdgeCache creates an empty edge cache. A capacity of zero (or less)
// disables caching: nothing is ever admitted and every request misses.
func NewEdgeCache(capacity int, policy Policy, rng *rand.Rand) *EdgeCache {
	ec := &EdgeCache{capacity: capacity}
	if capacity > 0 {
		ec.resident = make(map[int]struct{}, capacity)
		ec.policy = newEvictionPolicy(policy, capacity, rng)
	} else {
		ec.resident = make(map[int]struct{})
	}
	return ec
}

// Request serves one request for contentID and reports whether it hit along
// with the simulated service latency in milliseconds.
func (ec *EdgeCache) Request(contentID int, latEdgeMs, latOriginMs float64) (hit bool, latencyMs float64) {
	if _, ok := ec.resident[contentID]; ok {
		ec.policy.OnHit(contentID)
		return true, latEdgeMs
	}
	ec.admit(contentID)
	return false, latOriginMs
}

// admit inserts contentID, evicting one resident first if the cache is full.
// No-op when caching is disabled.
func (ec *EdgeCache) admit(contentID int) {
	if ec.capacity <= 0 {
		return
	}
	if len(ec.resident) >= ec.capacity {
		victim := ec.policy.SelectVictim()
		delete(ec.resident, victim)
		if ec.onEvict != nil {
			ec.onEvict(victim)
		}
	}
	ec.resident[contentID] = struct{}{}
	ec.policy.OnAdmit(contentID)
}

// Len returns the number of resident contents.
func (ec *EdgeCache) Len() int {
	return len(ec.resident)
}

// Contains reports whether contentID is resident without touching policy
// metadata.
func (ec *EdgeCache) Contains(contentID int) bool {
	_, ok := ec.resident[contentID]
	return ok
}

// SetEvictionHook registers fn to be called with each evicted content id.
// Used for decision tracing.
func (ec *EdgeCache) SetEvictionHook(fn func(victim int)) {
	ec.onEvict = fn
}
