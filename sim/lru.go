package sim

import (
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// lruPolicy orders resident contents by recency. The ordering is delegated
// to simplelru, which keeps an intrusive list with O(1) move-to-recent and
// O(1) oldest lookup. The edge cache evicts before admitting when full, so
// the list never exceeds capacity and simplelru's own size-triggered
// eviction never fires.
type lruPolicy struct {
	order *simplelru.LRU[int, struct{}]
}

func newLRUPolicy(capacity int) *lruPolicy {
	order, err := simplelru.NewLRU[int, struct{}](capacity, nil)
	if err != nil {
		// simplelru rejects capacity < 1; callers only build policies for
		// caches with capacity > 0, so this is a programming error.
		panic(err)
	}
	return &lruPolicy{order: order}
}

// OnHit moves id to the most-recently-used end.
func (p *lruPolicy) OnHit(id int) {
	p.order.Get(id)
}

// OnAdmit inserts id at the most-recently-used end.
func (p *lruPolicy) OnAdmit(id int) {
	p.order.Add(id, struct{}{})
}

// SelectVictim removes and returns the least-recently-used id.
func (p *lruPolicy) SelectVictim() int {
	victim, _, _ := p.order.RemoveOldest()
	return victim
}
