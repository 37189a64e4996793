package ebiten

import (
	"image/color"
	"math"
	"time"
)

// getPulsingExitColor returns a pulsing color for the unlocked exit
// Uses a sine wave to create a smooth pulsing effect
func (e *EbitenRenderer) getPulsingExitColor() color.Color {
	return pulse(colorExitUnlocked, 0.5, 1.0, 2*time.Second, e.session.Elapsed())
}

// pulse scales base between lo and hi brightness over period.
func pulse(base color.RGBA, lo, hi float64, period, at time.Duration) color.RGBA {
	phase := float64(at%period) / float64(period)
	v := (math.Sin(phase*2*math.Pi) + 1.0) / 2.0 // 0.0 to 1.0
	brightness := lo + (hi-lo)*v

	return color.RGBA{
		R: uint8(float64(base.R) * brightness),
		G: uint8(float64(base.G) * brightness),
		B: uint8(float64(base.B) * brightness),
		A: base.A,
	}
}
