package core

import (
	"fmt"
	"sync"
	"time"

	"github.com/joeycumines/logiface"
)

// Config tunes ZoneSort. A nil *Config is valid and uses the defaults.
type Config struct {
	// MaxWorkers caps the number of worker goroutines a sort may start. Zero
	// or negative means no cap. Asking for more zones than workers fails with
	// ErrResourceExhaustion before anything is started.
	MaxWorkers int

	// Logger receives structured events. Nil disables logging.
	Logger *logiface.Logger[logiface.Event]

	// OnSpawn, if set, is called by the orchestrator for each zone once its
	// worker has been started, in zone order.
	OnSpawn func(zone Zone)
}

func (c *Config) logger() *logiface.Logger[logiface.Event] {
	if c == nil {
		return nil
	}
	return c.Logger
}

// Stats describes a completed sort.
type Stats struct {
	Zones   int
	Elapsed time.Duration
	PerZone []ZoneStats
}

// Passes returns the total number of passes over all zones.
func (s *Stats) Passes() int {
	total := 0
	for _, z := range s.PerZone {
		total += z.Passes
	}
	return total
}

// Swaps returns the total number of exchanges over all zones.
func (s *Stats) Swaps() int {
	total := 0
	for _, z := range s.PerZone {
		total += z.Swaps
	}
	return total
}

// BoundaryChanges returns the total number of neighbour wakeups caused by
// changes to shared elements.
func (s *Stats) BoundaryChanges() int {
	total := 0
	for _, z := range s.PerZone {
		total += z.BoundaryChanges
	}
	return total
}

// ZoneSort sorts tab in place, ascending, using one goroutine per zone.
//
// Workers only synchronize with their neighbours, through the element each
// pair of adjacent zones shares. The call returns once every zone has
// completed a pass with no neighbour change left to process, and all
// workers have exited. On error, tab is left untouched.
func ZoneSort(tab []int, zones int, cfg *Config) (*Stats, error) {
	plan, err := PlanZones(len(tab), zones)
	if err != nil {
		return nil, err
	}
	if cfg != nil && cfg.MaxWorkers > 0 && zones > cfg.MaxWorkers {
		return nil, fmt.Errorf("%w: cannot start a worker for %s: limit is %d workers",
			ErrResourceExhaustion, plan[cfg.MaxWorkers], cfg.MaxWorkers)
	}

	log := cfg.logger()

	// Lock i and its data are shared by zones i and i+1.
	locks := make([]sync.Mutex, zones-1)
	gates := make([]*Gate, zones)
	for i := range gates {
		gates[i] = NewGate()
	}
	completed := NewGate()
	q := newQuiescence(zones, completed)

	workers := make([]*zoneWorker, zones)
	for i, z := range plan {
		w := &zoneWorker{
			zone:  z,
			tab:   tab[z.Start:z.End():z.End()],
			gate:  gates[i],
			q:     q,
			log:   log,
			stats: ZoneStats{Zone: z},
		}
		if i > 0 {
			w.lower = &locks[i-1]
			w.lowerGate = gates[i-1]
		}
		if i < zones-1 {
			w.upper = &locks[i]
			w.upperGate = gates[i+1]
		}
		workers[i] = w
	}

	start := NewBarrier(zones + 1)
	var wg sync.WaitGroup
	wg.Add(zones)

	for _, w := range workers {
		go func(w *zoneWorker) {
			defer wg.Done()
			start.Wait()
			w.run()
		}(w)
		if cfg != nil && cfg.OnSpawn != nil {
			cfg.OnSpawn(w.zone)
		}
	}

	log.Debug().Int("zones", zones).Int("size", len(tab)).Log("all zone workers started")

	begin := time.Now()
	start.Wait()

	completed.Wait()
	elapsed := time.Since(begin)

	// Every worker is either blocked on its gate or about to be; one extra
	// signal each lets them observe completion and return.
	for _, g := range gates {
		g.Signal()
	}
	wg.Wait()

	stats := &Stats{
		Zones:   zones,
		Elapsed: elapsed,
		PerZone: make([]ZoneStats, zones),
	}
	for i, w := range workers {
		stats.PerZone[i] = w.stats
	}

	log.Info().
		Int("zones", zones).
		Int("size", len(tab)).
		Int("passes", stats.Passes()).
		Int("boundary_changes", stats.BoundaryChanges()).
		Dur("elapsed", elapsed).
		Log("zone sort completed")

	return stats, nil
}
