package geom

import (
	"image/color"
	"math"
	"time"
)

// RefSize is the glyph's reference edge length in CSS pixels. All glyph
// control points are expressed at this size; rendering scales by size/RefSize.
const RefSize = 160.0

// Pulse parameters: scale = pulseBase + pulseAmp * sin(ms/pulseTimeDiv).
const (
	pulseBase    = 0.965
	pulseAmp     = 0.035
	pulseTimeDiv = 250.0
)

// Point is a position in CSS-pixel coordinates.
type Point struct {
	X, Y float64
}

// Polar returns the point at distance r from (cx, cy) along angle a.
func Polar(cx, cy, r, a float64) Point {
	sin, cos := math.Sincos(a)
	return Point{X: cx + cos*r, Y: cy + sin*r}
}

// Stop is one color stop of a gradient, with Offset in [0, 1].
type Stop struct {
	Offset float64
	Color  color.RGBA
}

// GlowStops is the stop table for the glow-ring annulus gradient: transparent
// at both edges, full color at the middle, half alpha at 0.4 and 0.6.
func GlowStops(c color.RGBA) []Stop {
	return []Stop{
		{Offset: 0, Color: WithAlpha(c, 0)},
		{Offset: 0.4, Color: WithAlpha(c, 0.5)},
		{Offset: 0.5, Color: WithAlpha(c, 1)},
		{Offset: 0.6, Color: WithAlpha(c, 0.5)},
		{Offset: 1, Color: WithAlpha(c, 0)},
	}
}

// HaloStops is the stop table for the ornament's soft background halo.
func HaloStops(c color.RGBA) []Stop {
	return []Stop{
		{Offset: 0, Color: WithAlpha(c, 0.13)},
		{Offset: 1, Color: WithAlpha(c, 0)},
	}
}

// WithAlpha returns c with its alpha channel set to a (straight alpha, 0-1).
func WithAlpha(c color.RGBA, a float64) color.RGBA {
	c.A = uint8(Clamp01(a)*255 + 0.5)
	return c
}

// RingDots places n dots evenly around the circle of radius r at (cx, cy),
// starting at angle 0 and stepping by 2π/n.
func RingDots(cx, cy, r float64, n int) []Point {
	if n <= 0 {
		return nil
	}
	pts := make([]Point, n)
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		pts[i] = Polar(cx, cy, r, float64(i)*step)
	}
	return pts
}

// PulseFactor returns the scale multiplier for the given elapsed time since
// mount. With pulsing off it is always exactly 1; with pulsing on it
// oscillates in [0.93, 1.0].
func PulseFactor(elapsed time.Duration, pulse bool) float64 {
	if !pulse {
		return 1
	}
	ms := float64(elapsed) / float64(time.Millisecond)
	return pulseBase + pulseAmp*math.Sin(ms/pulseTimeDiv)
}

// Scale converts a configured size and a pulse factor into the glyph's
// drawing scale.
func Scale(size, pulse float64) float64 {
	return size / RefSize * pulse
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
