package schedule

import (
	"testing"
	"time"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func TestInterval(t *testing.T) {
	tests := map[int]time.Duration{
		60:  17 * time.Millisecond,
		30:  33 * time.Millisecond,
		120: 8 * time.Millisecond,
		1:   time.Second,
	}
	for fps, want := range tests {
		if got := Interval(fps); got != want {
			t.Errorf("Interval(%d) = %v, want %v", fps, got, want)
		}
	}
}

func TestQueueFiresInDeadlineOrder(t *testing.T) {
	c := newClock()
	q := NewQueue(c.Now)
	var got []string
	q.After(30*time.Millisecond, func() { got = append(got, "c") })
	q.After(10*time.Millisecond, func() { got = append(got, "a") })
	q.After(10*time.Millisecond, func() { got = append(got, "b") })

	c.Advance(20 * time.Millisecond)
	if n := q.Run(c.Now()); n != 2 {
		t.Fatalf("Run fired %d, want 2", n)
	}
	c.Advance(20 * time.Millisecond)
	q.Run(c.Now())

	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("fired %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("fired %v, want %v", got, want)
		}
	}
	if q.Pending() != 0 {
		t.Errorf("pending = %d, want 0", q.Pending())
	}
}

func TestQueueRearmWaitsForNextRun(t *testing.T) {
	c := newClock()
	q := NewQueue(c.Now)
	count := 0
	var tick func()
	tick = func() {
		count++
		q.After(0, tick)
	}
	q.After(0, tick)

	q.Run(c.Now())
	if count != 1 {
		t.Fatalf("count = %d after one Run, want 1", count)
	}
	q.Run(c.Now())
	if count != 2 {
		t.Fatalf("count = %d after two Runs, want 2", count)
	}
}

func TestQueueCancel(t *testing.T) {
	c := newClock()
	q := NewQueue(c.Now)
	fired := false
	cancel := q.After(time.Millisecond, func() { fired = true })
	cancel()
	cancel()

	c.Advance(time.Second)
	q.Run(c.Now())
	if fired {
		t.Error("cancelled callback fired")
	}
}

func TestQueueNotDueYet(t *testing.T) {
	c := newClock()
	q := NewQueue(c.Now)
	q.After(17*time.Millisecond, func() {})
	c.Advance(16 * time.Millisecond)
	if n := q.Run(c.Now()); n != 0 {
		t.Errorf("Run fired %d before deadline", n)
	}
	if q.Pending() != 1 {
		t.Errorf("pending = %d, want 1", q.Pending())
	}
}

func TestRepeating(t *testing.T) {
	c := newClock()
	q := NewQueue(c.Now)
	alive := true
	steps := 0
	r := NewRepeating(q, 17*time.Millisecond, func() { steps++ }, func() bool { return alive })

	r.Start()
	if steps != 1 || !r.Armed() {
		t.Fatalf("after Start: steps=%d armed=%v", steps, r.Armed())
	}
	for i := 0; i < 9; i++ {
		c.Advance(17 * time.Millisecond)
		q.Run(c.Now())
	}
	if steps != 10 || r.Fired() != 10 {
		t.Fatalf("steps=%d fired=%d, want 10", steps, r.Fired())
	}

	// Flag flipped without Stop: the pending firing is a no-op and does not re-arm.
	alive = false
	c.Advance(17 * time.Millisecond)
	q.Run(c.Now())
	if steps != 10 || q.Pending() != 0 || r.Armed() {
		t.Errorf("after alive=false: steps=%d pending=%d armed=%v", steps, q.Pending(), r.Armed())
	}
}

func TestRepeatingStop(t *testing.T) {
	c := newClock()
	q := NewQueue(c.Now)
	steps := 0
	r := NewRepeating(q, 17*time.Millisecond, func() { steps++ }, func() bool { return true })
	r.Start()
	r.Stop()
	r.Stop()

	if q.Pending() != 0 || r.Armed() {
		t.Fatalf("pending=%d armed=%v after Stop", q.Pending(), r.Armed())
	}
	c.Advance(time.Second)
	q.Run(c.Now())
	r.Start()
	if steps != 1 {
		t.Errorf("steps = %d, want 1", steps)
	}
}
