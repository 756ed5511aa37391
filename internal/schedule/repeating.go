package schedule

import "time"

// Repeating runs step every interval for as long as alive reports true.
// Each firing re-arms the next one after step returns, so at most one firing
// is ever pending.
type Repeating struct {
	sched    Scheduler
	interval time.Duration
	step     func()
	alive    func() bool

	cancel  func()
	fired   int
	stopped bool
}

func NewRepeating(sched Scheduler, interval time.Duration, step func(), alive func() bool) *Repeating {
	return &Repeating{
		sched:    sched,
		interval: interval,
		step:     step,
		alive:    alive,
	}
}

// Start runs the first step immediately and arms the next one.
func (r *Repeating) Start() {
	r.fire()
}

func (r *Repeating) fire() {
	r.cancel = nil
	if r.stopped || !r.alive() {
		return
	}
	r.step()
	r.fired++
	r.arm()
}

func (r *Repeating) arm() {
	if r.stopped || !r.alive() {
		return
	}
	r.cancel = r.sched.After(r.interval, r.fire)
}

// Stop cancels the pending firing. It is safe to call more than once.
func (r *Repeating) Stop() {
	r.stopped = true
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

// Fired returns how many times step has run.
func (r *Repeating) Fired() int { return r.fired }

// Armed reports whether a firing is pending.
func (r *Repeating) Armed() bool { return r.cancel != nil }
