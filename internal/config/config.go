package config

const (
	WindowWidth  = 800
	WindowHeight = 800
	WindowTitle  = "Tsukuyomi Infinito"

	// Base radius as a fraction of min(WindowWidth, WindowHeight)
	RadiusFactor = 0.45

	// Visualization parameters
	SpokeCount = 120
	RingCount  = 6
	FPS        = 60

	// Host ticks per second; the scheduler is pumped once per host tick
	HostTPS = FPS * 4

	// Overlay text
	TitleText  = "TSUKUYOMI INFINITO"
	TitleY     = 60
	TitleSize  = 28
	HintText   = "Premi ESC per uscire"
	HintMargin = 40
	HintSize   = 12
	FontFamily = "Helvetica"

	// Ambient drone, off by default
	DroneEnabled    = false
	DroneSampleRate = 44100
	DroneBaseHz     = 55.0
	DroneVolume     = 0.18
)

// Center returns the canvas center.
func Center() (float64, float64) {
	return WindowWidth / 2, WindowHeight / 2
}

// Radius returns the base radius R.
func Radius() float64 {
	return RadiusFactor * float64(min(WindowWidth, WindowHeight))
}
