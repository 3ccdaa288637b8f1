package sim

import "math/rand"

// randomPolicy evicts a uniformly random resident. Residents are kept in a
// slice rather than a map so the victim draw is a pure function of the run's
// eviction RNG stream (Go map iteration order would not be).
type randomPolicy struct {
	rng      *rand.Rand
	resident []int
}

func newRandomPolicy(rng *rand.Rand) *randomPolicy {
	return &randomPolicy{rng: rng}
}

// OnHit is a no-op: random replacement keeps no access metadata.
func (p *randomPolicy) OnHit(int) {}

// OnAdmit appends id to the resident slice.
func (p *randomPolicy) OnAdmit(id int) {
	p.resident = append(p.resident, id)
}

// SelectVictim removes and returns a uniformly random resident id.
func (p *randomPolicy) SelectVictim() int {
	slot := p.rng.Intn(len(p.resident))
	victim := p.resident[slot]
	last := len(p.resident) - 1
	p.resident[slot] = p.resident[last]
	p.resident = p.resident[:last]
	return victim
}
