// Package schedule provides a single-threaded schedule-once queue pumped by
// the host event loop, and a repeating task built on top of it.
package schedule

import (
	"math"
	"time"
)

// Scheduler runs fn once after d. The returned cancel func removes fn if it
// has not fired yet; calling it afterwards is harmless.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// Interval returns the per-frame delay for fps, rounded to whole milliseconds.
func Interval(fps int) time.Duration {
	return time.Duration(math.Round(1000/float64(fps))) * time.Millisecond
}

type entry struct {
	seq      uint64
	deadline time.Time
	fn       func()
}

// Queue is a Scheduler whose callbacks fire from Run. It must only be used
// from one goroutine.
type Queue struct {
	now     func() time.Time
	entries []*entry
	seq     uint64
}

func NewQueue(now func() time.Time) *Queue {
	if now == nil {
		now = time.Now
	}
	return &Queue{now: now}
}

func (q *Queue) After(d time.Duration, fn func()) func() {
	q.seq++
	e := &entry{seq: q.seq, deadline: q.now().Add(d), fn: fn}
	q.entries = append(q.entries, e)
	return func() { q.remove(e) }
}

// Run fires every callback due at now, earliest first. Callbacks scheduled
// while Run is executing wait for a later Run. It returns the number fired.
func (q *Queue) Run(now time.Time) int {
	limit := q.seq
	fired := 0
	for {
		e := q.nextDue(now, limit)
		if e == nil {
			return fired
		}
		q.remove(e)
		e.fn()
		fired++
	}
}

// Pending returns the number of callbacks waiting to fire.
func (q *Queue) Pending() int {
	return len(q.entries)
}

func (q *Queue) nextDue(now time.Time, limit uint64) *entry {
	var best *entry
	for _, e := range q.entries {
		if e.seq > limit || e.deadline.After(now) {
			continue
		}
		if best == nil || e.deadline.Before(best.deadline) ||
			(e.deadline.Equal(best.deadline) && e.seq < best.seq) {
			best = e
		}
	}
	return best
}

func (q *Queue) remove(e *entry) {
	for i, x := range q.entries {
		if x == e {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return
		}
	}
}
