// Package frame holds the host-side scheduling plumbing shared by the
// rendering backends: a display-refresh callback queue and a viewport
// resize observer list. Both are meant to be driven from a single loop
// goroutine and do no locking.
package frame

// ID identifies a scheduled frame callback. The zero ID is never issued.
type ID uint64

type request struct {
	id ID
	fn func()
}

// Queue collects callbacks for the next display refresh.
type Queue struct {
	next    ID
	pending []request
}

// RequestFrame schedules fn for the next Run and returns its handle.
func (q *Queue) RequestFrame(fn func()) ID {
	q.next++
	q.pending = append(q.pending, request{id: q.next, fn: fn})
	return q.next
}

// CancelFrame drops a pending callback. Unknown or already-run IDs are ignored.
func (q *Queue) CancelFrame(id ID) {
	if id == 0 {
		return
	}
	for i, r := range q.pending {
		if r.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
}

// Run invokes every callback requested before this call and returns how
// many ran. Callbacks requested while running are deferred to the next Run.
func (q *Queue) Run() int {
	if len(q.pending) == 0 {
		return 0
	}
	batch := q.pending
	q.pending = nil
	for _, r := range batch {
		r.fn()
	}
	return len(batch)
}

// Pending reports how many callbacks wait for the next Run.
func (q *Queue) Pending() int { return len(q.pending) }
