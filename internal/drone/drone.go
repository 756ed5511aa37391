// Package drone plays a low hum whose loudness follows the pulsation of the
// pattern.
package drone

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// smoothing is the per-sample weight of the previous amplitude.
const smoothing = 0.9995

// Drone is a beep.Streamer producing a fundamental plus its fifth. The
// target level is written by the game loop and read by the audio thread.
type Drone struct {
	SampleRate beep.SampleRate
	BaseHz     float64
	Volume     float64

	mu    sync.RWMutex
	level float64

	amp   float64
	phase float64
	pos   int
}

func New(sr beep.SampleRate, baseHz, volume float64) *Drone {
	return &Drone{
		SampleRate: sr,
		BaseHz:     baseHz,
		Volume:     volume,
	}
}

// SetLevel sets the target loudness, clamped to [0, 1].
func (d *Drone) SetLevel(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	d.mu.Lock()
	d.level = v
	d.mu.Unlock()
}

func (d *Drone) Level() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.level
}

func (d *Drone) Stream(samples [][2]float64) (int, bool) {
	target := d.Level() * d.Volume
	step := 2 * math.Pi * d.BaseHz / float64(d.SampleRate)
	for i := range samples {
		d.amp = smoothing*d.amp + (1-smoothing)*target
		v := d.amp * (0.7*math.Sin(d.phase) + 0.3*math.Sin(1.5*d.phase))
		// slow stereo drift
		pan := 0.5 + 0.1*math.Sin(float64(d.pos)/float64(d.SampleRate)*0.4)
		samples[i][0] = v * (1 - pan) * 2
		samples[i][1] = v * pan * 2
		d.phase += step
		if d.phase > 4*math.Pi {
			d.phase -= 4 * math.Pi
		}
		d.pos++
	}
	return len(samples), true
}

func (d *Drone) Err() error { return nil }

// Player owns the speaker while the drone is audible.
type Player struct {
	drone   *Drone
	ctrl    *beep.Ctrl
	started bool
}

func NewPlayer(d *Drone) *Player {
	return &Player{drone: d}
}

// Start opens the audio device and plays the drone.
func (p *Player) Start() error {
	if p.started {
		return nil
	}
	sr := p.drone.SampleRate
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return err
	}
	p.ctrl = &beep.Ctrl{Streamer: p.drone}
	speaker.Play(p.ctrl)
	p.started = true
	return nil
}

// Stop silences the drone. It is safe to call when Start failed or was
// never called.
func (p *Player) Stop() {
	if !p.started {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Clear()
	speaker.Unlock()
	p.started = false
}
