package sim

// lfuPolicy counts accesses per resident content. Victim selection is a
// linear scan over residents, acceptable at simulated cache capacities.
//
// Frequency ties break toward the lowest content id. The total order
// (frequency, id) is strict, so the scan picks the same victim whatever
// order Go iterates the map in, keeping runs reproducible.
type lfuPolicy struct {
	freq map[int]int
}

func newLFUPolicy(capacity int) *lfuPolicy {
	return &lfuPolicy{freq: make(map[int]int, capacity)}
}

// OnHit increments the frequency counter for id.
func (p *lfuPolicy) OnHit(id int) {
	p.freq[id]++
}

// OnAdmit starts id at frequency 1.
func (p *lfuPolicy) OnAdmit(id int) {
	p.freq[id] = 1
}

// SelectVictim removes and returns the lowest-frequency id, lowest id first
// on ties.
func (p *lfuPolicy) SelectVictim() int {
	victim := -1
	victimFreq := 0
	for id, f := range p.freq {
		if victim == -1 || f < victimFreq || (f == victimFreq && id < victim) {
			victim = id
			victimFreq = f
		}
	}
	delete(p.freq, victim)
	return victim
}
