// In this file, we implement the start line that holds zone workers until all of them exist.
package core

import "sync"

// Barrier uses a condition variable (sync.Cond) to synchronize a set of goroutines.
// ZoneSort uses one as a start line: every worker plus the orchestrator must
// arrive before the first pass runs.
type Barrier struct {
	mu    sync.Mutex
	cond  *sync.Cond
	total int
	count int
	round uint64
}

func NewBarrier(total int) *Barrier {
	if total <= 0 {
		panic("barrier total must be > 0")
	}
	b := &Barrier{total: total}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Wait blocks until total goroutines have called it, then releases all of
// them. The barrier resets and may be reused for another round.
func (b *Barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	round := b.round
	b.count++
	if b.count == b.total {
		// Last goroutine to arrive: reset and wake everyone.
		b.count = 0
		b.round++
		b.cond.Broadcast()
		return
	}
	// Guard against spurious wakeups and early arrivals of the next round.
	for round == b.round {
		b.cond.Wait()
	}
}
