// Package animator renders the Tsukuyomi pattern: rotating spokes, pulsing
// rings and a pulsing central eye, all derived from elapsed wall-clock time.
package animator

import (
	"errors"
	"time"

	"github.com/iburimskiy/tsukuyomi/internal/config"
)

var (
	ErrNilSurface = errors.New("animator: nil surface")
	ErrNilHost    = errors.New("animator: nil host")
	ErrNilClock   = errors.New("animator: nil clock")
)

// Frame holds the parameters derived for one tick.
type Frame struct {
	T     float64
	Angle float64
	Puls  float64
	Twist float64
}

// Animator owns the animation clock and the rotation accumulator. It is not
// safe for concurrent use; every method runs on the host's event loop.
type Animator struct {
	surface Surface
	host    Host
	clock   Clock

	start   time.Time
	angle   float64
	running bool
	frames  int

	cx, cy float64
	radius float64

	observer func(Frame)
}

// New binds an Animator to surface and host, draws the static overlay and
// leaves it RUNNING. It fails fast when a collaborator is missing.
func New(surface Surface, host Host, clock Clock) (*Animator, error) {
	switch {
	case surface == nil:
		return nil, ErrNilSurface
	case host == nil:
		return nil, ErrNilHost
	case clock == nil:
		return nil, ErrNilClock
	}

	cx, cy := config.Center()
	a := &Animator{
		surface: surface,
		host:    host,
		clock:   clock,
		start:   clock.Now(),
		running: true,
		cx:      cx,
		cy:      cy,
		radius:  config.Radius(),
	}

	surface.Text(cx, config.TitleY, config.TitleText, White,
		Font{Family: config.FontFamily, Size: config.TitleSize, Bold: true})
	surface.Text(cx, config.WindowHeight-config.HintMargin, config.HintText, White,
		Font{Family: config.FontFamily, Size: config.HintSize})

	return a, nil
}

// OnFrame registers fn to be called with the parameters of every drawn frame.
func (a *Animator) OnFrame(fn func(Frame)) {
	a.observer = fn
}

// OnTick advances the rotation and redraws every transient primitive.
// It does nothing once the animator has stopped.
func (a *Animator) OnTick() {
	if !a.running {
		return
	}

	t := a.clock.Now().Sub(a.start).Seconds()
	a.angle += AngleStep(t)
	f := Frame{T: t, Angle: a.angle, Puls: Pulsation(t), Twist: Twist(t)}

	a.surface.Clear(TagTransient)
	a.drawSpokes(f)
	a.drawRings(f)
	a.drawEye(f)

	a.frames++
	if a.observer != nil {
		a.observer(f)
	}
}

func (a *Animator) drawSpokes(f Frame) {
	for i := 0; i < config.SpokeCount; i++ {
		a2 := SpokeAngle(i, f.T, f.Angle, f.Twist)
		r := SpokeRadius(i, f.T, a.radius)
		x, y := SpokeEndpoint(a.cx, a.cy, a2, r, f.Puls)
		a.surface.Line(a.cx, a.cy, x, y, SpokeColor(i, f.T), SpokeWidth(i, f.T, f.Puls), TagTransient)
	}
}

func (a *Animator) drawRings(f Frame) {
	for j := 0; j < config.RingCount; j++ {
		a.surface.Circle(a.cx, a.cy, RingRadius(j, f.Puls, a.radius), RingColor(j, f.Puls), 2, TagTransient)
	}
}

func (a *Animator) drawEye(f Frame) {
	a.surface.Disc(a.cx, a.cy, EyeRadius(f.Puls), EyeColor, TagTransient)
}

// Stop moves the animator to STOPPED and closes the host window. Calling it
// again has no effect.
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.host.Close()
}

func (a *Animator) Running() bool { return a.running }

// Angle returns the rotation accumulator in radians.
func (a *Animator) Angle() float64 { return a.angle }

// Frames returns the number of frames drawn so far.
func (a *Animator) Frames() int { return a.frames }

// Elapsed returns the time since construction.
func (a *Animator) Elapsed() time.Duration {
	return a.clock.Now().Sub(a.start)
}
