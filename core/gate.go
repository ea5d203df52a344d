// In this file, we implement the counting signal shared by every zone and by the orchestrator.
package core

import "sync"

// Gate is a counting signal built on a condition variable (sync.Cond).
// Signals are never lost: a Signal with nobody waiting is kept until the
// next Wait consumes it.
type Gate struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending int
}

func NewGate() *Gate {
	g := &Gate{}
	g.cond = sync.NewCond(&g.mu)
	return g
}

// Wait blocks until at least one signal is pending, then consumes it.
func (g *Gate) Wait() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for g.pending == 0 {
		g.cond.Wait()
	}
	g.pending--
}

// Signal records one pending signal and wakes a single waiter, if any.
func (g *Gate) Signal() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.pending++
	g.cond.Signal()
}

// Pending returns the number of signals not yet consumed.
func (g *Gate) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending
}
