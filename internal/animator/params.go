package animator

import (
	"math"

	"github.com/iburimskiy/tsukuyomi/internal/config"
)

// AngleStep is the rotation added to the accumulator each frame. It is
// always at least 0.01.
func AngleStep(t float64) float64 {
	return 0.015 + 0.005*math.Sin(0.6*t)
}

// Pulsation oscillates in [0, 1].
func Pulsation(t float64) float64 {
	return 0.5 + 0.5*math.Sin(0.8*t)
}

// Twist oscillates in [-0.8, 0.8].
func Twist(t float64) float64 {
	return 0.8 * math.Sin(0.4*t)
}

// SpokeAngle is the angular position of spoke i after rotation and twist.
func SpokeAngle(i int, t, angle, twist float64) float64 {
	a := 2 * math.Pi * float64(i) / config.SpokeCount
	return a + angle + 0.2*twist*math.Sin(0.12*float64(i)+0.8*t)
}

// SpokeRadius is in [0.2R, R].
func SpokeRadius(i int, t, radius float64) float64 {
	return radius * (0.2 + 0.8*(0.5+0.5*math.Cos(0.3*float64(i)+1.1*t)))
}

// SpokeEndpoint scales the spoke by the pulsation and places it around (cx, cy).
func SpokeEndpoint(cx, cy, a2, r, puls float64) (float64, float64) {
	scale := r * (0.6 + 0.4*puls)
	return cx + math.Cos(a2)*scale, cy + math.Sin(a2)*scale
}

// SpokeHue cycles with index and time, biased away from pure red at 0.
func SpokeHue(i int, t float64) float64 {
	hue := math.Mod(float64(i)/config.SpokeCount+0.05*t, 1)
	return math.Mod(0.98*hue+0.02, 1)
}

func SpokeColor(i int, t float64) RGB {
	return HSV(SpokeHue(i, t), 0.8, 0.9)
}

func SpokeWidth(i int, t, puls float64) float64 {
	return 1 + 3*(0.5+0.5*math.Sin(0.2*float64(i)+1.6*t))*puls
}

func RingRadius(j int, puls, radius float64) float64 {
	return radius * (0.12 + 0.13*float64(j)) * (0.8 + 0.2*puls)
}

// RingIntensity is the red channel of ring j, clamped to a byte.
func RingIntensity(j int, puls float64) uint8 {
	return ClampByte(int(40 + 30*float64(j) + 60*puls))
}

func RingColor(j int, puls float64) RGB {
	return RGB{R: RingIntensity(j, puls)}
}

func EyeRadius(puls float64) float64 {
	return 16 + 8*puls
}
