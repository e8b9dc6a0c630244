package geom

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingDots(t *testing.T) {
	const (
		cx, cy = 400.0, 300.0
		r      = 230.0
		n      = 160
	)

	dots := RingDots(cx, cy, r, n)
	require.Len(t, dots, n)

	step := 2 * math.Pi / float64(n)
	for i, d := range dots {
		dist := math.Hypot(d.X-cx, d.Y-cy)
		assert.InDelta(t, r, dist, 1e-9, "dot %d distance", i)

		want := Polar(cx, cy, r, float64(i)*step)
		if diff := cmp.Diff(want, d, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("dot %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestRingDotsDegenerate(t *testing.T) {
	assert.Nil(t, RingDots(0, 0, 10, 0))
	assert.Nil(t, RingDots(0, 0, 10, -3))
}

func TestGlowStops(t *testing.T) {
	colors := []color.RGBA{
		{R: 0xff, G: 0x02, B: 0xe6, A: 0xff},
		{R: 0x00, G: 0xff, B: 0x00, A: 0xff},
		{R: 0x12, G: 0x34, B: 0x56, A: 0xff},
	}

	for _, c := range colors {
		stops := GlowStops(c)
		require.Len(t, stops, 5)

		offsets := []float64{0, 0.4, 0.5, 0.6, 1}
		alphas := []uint8{0, 128, 255, 128, 0}
		for i, s := range stops {
			assert.Equal(t, offsets[i], s.Offset, "stop %d offset", i)
			assert.Equal(t, alphas[i], s.Color.A, "stop %d alpha", i)
			assert.Equal(t, c.R, s.Color.R, "stop %d red", i)
			assert.Equal(t, c.G, s.Color.G, "stop %d green", i)
			assert.Equal(t, c.B, s.Color.B, "stop %d blue", i)
		}
	}
}

func TestHaloStops(t *testing.T) {
	c := color.RGBA{R: 0xff, G: 0x02, B: 0xe6, A: 0xff}
	stops := HaloStops(c)
	require.Len(t, stops, 2)
	assert.Equal(t, 0.0, stops[0].Offset)
	assert.Equal(t, uint8(33), stops[0].Color.A) // 13% of 255, rounded
	assert.Equal(t, 1.0, stops[1].Offset)
	assert.Equal(t, uint8(0), stops[1].Color.A)
}

func TestPulseFactorOff(t *testing.T) {
	for _, elapsed := range []time.Duration{0, time.Millisecond, time.Second, time.Hour} {
		assert.Equal(t, 1.0, PulseFactor(elapsed, false), "elapsed %v", elapsed)
	}
}

func TestPulseFactorOn(t *testing.T) {
	assert.InDelta(t, 0.965, PulseFactor(0, true), 1e-9)

	// Quarter period of the sinusoid: sin(ms/250) = 1.
	quarterNs := 250 * math.Pi / 2 * float64(time.Millisecond)
	quarter := time.Duration(quarterNs)
	assert.InDelta(t, 1.0, PulseFactor(quarter, true), 1e-6)

	// Three quarters: sin(ms/250) = -1, the bottom of the range.
	threeQuartersNs := 250 * 3 * math.Pi / 2 * float64(time.Millisecond)
	threeQuarters := time.Duration(threeQuartersNs)
	assert.InDelta(t, 0.93, PulseFactor(threeQuarters, true), 1e-6)

	for ms := 0; ms < 5000; ms += 37 {
		f := PulseFactor(time.Duration(ms)*time.Millisecond, true)
		assert.GreaterOrEqual(t, f, 0.93-1e-9)
		assert.LessOrEqual(t, f, 1.0+1e-9)
	}
}

func TestScale(t *testing.T) {
	assert.InDelta(t, 1.0, Scale(160, 1), 1e-9)
	assert.InDelta(t, 0.5, Scale(80, 1), 1e-9)
	assert.InDelta(t, 2.0, Scale(320, 1), 1e-9)
	assert.InDelta(t, 0.93, Scale(160, 0.93), 1e-9)
}

func TestWithAlpha(t *testing.T) {
	c := color.RGBA{R: 10, G: 20, B: 30, A: 0xff}
	assert.Equal(t, uint8(0), WithAlpha(c, 0).A)
	assert.Equal(t, uint8(255), WithAlpha(c, 1).A)
	assert.Equal(t, uint8(128), WithAlpha(c, 0.5).A)
	assert.Equal(t, uint8(255), WithAlpha(c, 2).A)
	assert.Equal(t, uint8(0), WithAlpha(c, -1).A)
	assert.Equal(t, uint8(10), WithAlpha(c, 0.5).R, "rgb preserved")
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.5))
	assert.Equal(t, 0.25, Clamp01(0.25))
	assert.Equal(t, 1.0, Clamp01(1.5))
}
