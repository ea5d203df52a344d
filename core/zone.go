package core

import (
	"sync"

	"github.com/joeycumines/logiface"
)

// ZoneStats records what one worker did during a sort.
type ZoneStats struct {
	Zone Zone
	// Passes is the number of full bubble passes run over the zone.
	Passes int
	// Swaps counts every exchange, boundary or not.
	Swaps int
	// BoundaryChanges counts the passes' updates to a shared element that
	// left it with a different value, each of which woke a neighbour.
	BoundaryChanges int
}

// zoneWorker owns everything one goroutine needs to sort its zone. Nothing in
// it is shared with other workers except through the locks and gates.
type zoneWorker struct {
	zone Zone
	tab  []int // the zone's slice of the array, tab[0] is the lower boundary

	lower     *sync.Mutex // shared with zone-1, nil for the first zone
	upper     *sync.Mutex // shared with zone+1, nil for the last zone
	lowerGate *Gate
	upperGate *Gate
	gate      *Gate

	q     *quiescence
	log   *logiface.Logger[logiface.Event]
	stats ZoneStats
}

// run sorts the zone until every zone is settled at once.
func (w *zoneWorker) run() {
	for {
		w.pass()
		if w.q.settle() {
			w.log.Debug().
				Int("zone", w.zone.Index).
				Int("passes", w.stats.Passes).
				Log("zone completed the sort")
			return
		}
		w.gate.Wait()
		if w.q.finished() {
			return
		}
	}
}

// pass runs one bubble pass over the zone. After pass returns the zone is
// sorted, unless a neighbour has since changed a boundary element, in which
// case the worker's gate has been signalled.
func (w *zoneWorker) pass() {
	tab := w.tab
	n := len(tab)
	swaps, changes := 0, 0

	for i := n - 1; i > 0; i-- {
		top := i == n-1 && w.upper != nil
		var upperVal int
		if top {
			w.upper.Lock()
			upperVal = tab[i]
		}

		for j := 0; j < i; j++ {
			bottom := j == 0 && w.lower != nil
			var lowerVal int
			if bottom {
				w.lower.Lock()
				lowerVal = tab[j]
			}

			if tab[j] > tab[i] {
				tab[j], tab[i] = tab[i], tab[j]
				swaps++
			}

			if bottom {
				if tab[j] != lowerVal {
					w.q.disturb()
					w.lowerGate.Signal()
					changes++
				}
				w.lower.Unlock()
			}
		}

		if top {
			if tab[i] != upperVal {
				w.q.disturb()
				w.upperGate.Signal()
				changes++
			}
			w.upper.Unlock()
		}
	}

	w.stats.Passes++
	w.stats.Swaps += swaps
	w.stats.BoundaryChanges += changes

	w.log.Debug().
		Int("zone", w.zone.Index).
		Int("pass", w.stats.Passes).
		Int("swaps", swaps).
		Int("boundary_changes", changes).
		Log("pass finished")
}
