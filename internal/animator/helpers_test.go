package animator

import "time"

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type testHost struct {
	closes  int
	onClose func()
}

func (h *testHost) Close() {
	h.closes++
	if h.onClose != nil {
		h.onClose()
	}
}
