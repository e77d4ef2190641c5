package render

import (
	"image/color"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Pitch surface and marking colors
var (
	grassGreen   = color.NRGBA{R: 0x2e, G: 0x8b, B: 0x3a, A: 0xff}
	markingWhite = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	heatmapBase  = color.NRGBA{R: 0x0a, G: 0x0a, B: 0x0a, A: 0xff}
	heatmapLines = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// heatColor maps a normalized density t in [0,1] onto the hot ramp
// black -> red -> yellow -> white
func heatColor(t float64) color.NRGBA {
	t = clamp01(t)

	var r, g, b float64
	switch {
	case t < 1.0/3:
		r = t * 3
	case t < 2.0/3:
		r = 1
		g = (t - 1.0/3) * 3
	default:
		r = 1
		g = 1
		b = (t - 2.0/3) * 3
	}

	return color.NRGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: 0xff,
	}
}

// speedColor interpolates from red (slow) to white (fast) for a speed
// normalized into [0,1] against the trajectory's own min/max
func speedColor(t float64) color.NRGBA {
	t = clamp01(t)

	slow := drawing.ColorRed
	fast := drawing.ColorWhite
	return color.NRGBA{
		R: lerpChannel(slow.R, fast.R, t),
		G: lerpChannel(slow.G, fast.G, t),
		B: lerpChannel(slow.B, fast.B, t),
		A: 0xff,
	}
}

// lerpChannel interpolates one 8-bit color channel
func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
