// core/sequential.go
package core

import (
	"time"

	"github.com/joeycumines/logiface"
)

// SequentialSort sorts tab in place on the calling goroutine, running the
// same pass as a zone worker over a single zone covering the whole array.
// It is the baseline ZoneSort is measured and checked against.
//   - no locks, no gates: a lone zone has no neighbours
//   - one pass always suffices, the settle check ends the loop after it
func SequentialSort(tab []int, log *logiface.Logger[logiface.Event]) *Stats {
	z := Zone{Index: 0, Start: 0, Len: len(tab)}
	w := &zoneWorker{
		zone:  z,
		tab:   tab,
		gate:  NewGate(),
		q:     newQuiescence(1, NewGate()),
		log:   log,
		stats: ZoneStats{Zone: z},
	}

	begin := time.Now()
	w.run()
	elapsed := time.Since(begin)

	log.Info().
		Int("size", len(tab)).
		Int("swaps", w.stats.Swaps).
		Dur("elapsed", elapsed).
		Log("sequential sort completed")

	return &Stats{
		Zones:   1,
		Elapsed: elapsed,
		PerZone: []ZoneStats{w.stats},
	}
}
