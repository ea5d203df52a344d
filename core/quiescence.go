package core

import "sync"

// quiescence detects when every zone is settled at the same time.
//
// count equals total minus the number of workers mid-pass minus the number
// of zone gate signals not yet consumed. It therefore reaches total only when
// no worker is running and no wakeup is outstanding, and can never leave
// total afterwards.
type quiescence struct {
	mu        sync.Mutex
	count     int
	total     int
	done      bool
	completed *Gate
}

func newQuiescence(total int, completed *Gate) *quiescence {
	return &quiescence{total: total, completed: completed}
}

// settle is called by a worker after a pass. It reports true to the single
// caller whose increment completes the sort, after signalling the completion
// gate.
func (q *quiescence) settle() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.count++
	if q.count != q.total {
		return false
	}
	q.done = true
	q.completed.Signal()
	return true
}

// disturb is called by a worker that changed an element shared with a
// neighbour. It must run before the neighbour's gate is signalled, otherwise
// the woken neighbour may settle the count to total while this worker is
// still mid-pass.
func (q *quiescence) disturb() {
	q.mu.Lock()
	q.count--
	q.mu.Unlock()
}

func (q *quiescence) finished() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.done
}
