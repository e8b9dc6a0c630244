package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neonsigil/internal/config"
	"neonsigil/internal/geom"
	"neonsigil/internal/timing"
)

// MandalaBase continuously renders the three-ring motif over a black
// background, centered on the viewport. It takes no configuration; radii and
// colors are fixed. It draws straight onto the screen, whose backing is
// reallocated by the host on every layout change.
type MandalaBase struct {
	clock timing.Clock
	lc    lifecycle

	w, h  int
	scale float64
}

func NewMandalaBase(clock timing.Clock) *MandalaBase {
	return &MandalaBase{clock: clock, scale: 1}
}

func (m *MandalaBase) Mount() {
	if m.lc.mounted {
		m.Unmount()
	}
	m.lc.begin(m.clock)
}

func (m *MandalaBase) Unmount() {
	m.lc.end()
}

func (m *MandalaBase) Mounted() bool { return m.lc.mounted }

func (m *MandalaBase) Frames() uint64 { return m.lc.frames }

// Resize tracks the viewport in device pixels and the device scale factor.
// Every call is honored; there is no redundancy guard.
func (m *MandalaBase) Resize(w, h int, scale float64) {
	m.w, m.h = w, h
	if scale > 0 {
		m.scale = scale
	}
}

// Center is the viewport center in device pixels.
func (m *MandalaBase) Center() (float64, float64) {
	return float64(m.w) / 2, float64(m.h) / 2
}

func (m *MandalaBase) Update() {
	if !m.lc.mounted {
		return
	}
	m.lc.frames++
}

func (m *MandalaBase) Draw(dst *ebiten.Image) {
	if !m.lc.mounted || dst == nil {
		return
	}

	dst.Fill(color.Black)

	cx, cy := m.Center()
	s := m.scale

	drawGlowRing(dst, cx, cy, config.MandalaGlowRadius*s, config.MandalaGlowThickness*s, config.MandalaGlowColor)

	drawRing(dst, cx, cy, config.MandalaSolidRadius*s, ringOptions{
		color: config.MandalaSolidColor,
		width: config.MandalaSolidWidth * s,
	})

	drawRing(dst, cx, cy, config.MandalaDotRadius*s, ringOptions{
		color:    config.MandalaGlowColor,
		dotted:   true,
		dotCount: config.MandalaDotCount,
		dotSize:  config.MandalaDotSize * s,
	})
}

type ringOptions struct {
	color    color.RGBA
	width    float64
	dotted   bool
	dotCount int
	dotSize  float64
}

// drawRing strokes a full circle of radius r, or plots dotCount evenly
// spaced dots along it when dotted is set.
func drawRing(dst *ebiten.Image, cx, cy, r float64, opt ringOptions) {
	if opt.dotted {
		for _, d := range geom.RingDots(cx, cy, r, opt.dotCount) {
			vector.DrawFilledCircle(dst, float32(d.X), float32(d.Y),
				float32(opt.dotSize), opt.color, true)
		}
		return
	}
	vector.StrokeCircle(dst, float32(cx), float32(cy),
		float32(r), float32(opt.width), opt.color, true)
}
