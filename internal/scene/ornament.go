package scene

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neonsigil/internal/config"
	"neonsigil/internal/geom"
	"neonsigil/internal/timing"
)

// Ornament renders the neon sigil onto its own square backing surface,
// oversampled by the device scale factor so drawing stays in CSS-pixel
// coordinates. Configuration is fixed per mount; SetConfig restarts the
// instance, resetting the pulse phase and resizing the surface.
type Ornament struct {
	clock timing.Clock
	lc    lifecycle
	cfg   config.Ornament

	deviceScale float64
	surface     *ebiten.Image
	surfacePx   int

	pulseNow float64
}

func NewOrnament(clock timing.Clock, cfg config.Ornament) *Ornament {
	return &Ornament{clock: clock, cfg: cfg, deviceScale: 1, pulseNow: 1}
}

func (o *Ornament) Mount() {
	if o.lc.mounted {
		o.Unmount()
	}
	o.lc.begin(o.clock)
	o.pulseNow = geom.PulseFactor(0, o.cfg.Pulse)
}

// Unmount stops the frame chain and releases the backing surface.
func (o *Ornament) Unmount() {
	o.lc.end()
	if o.surface != nil {
		o.surface.Deallocate()
		o.surface = nil
		o.surfacePx = 0
	}
}

func (o *Ornament) Mounted() bool { return o.lc.mounted }

func (o *Ornament) Frames() uint64 { return o.lc.frames }

func (o *Ornament) Config() config.Ornament { return o.cfg }

// SetConfig replaces the configuration. A mounted instance is restarted so
// the new values take effect from a fresh chain; at no point do two chains
// run concurrently.
func (o *Ornament) SetConfig(cfg config.Ornament) {
	o.cfg = cfg
	if o.lc.mounted {
		o.Mount()
	}
}

// SetDeviceScale updates the oversampling factor. The surface is rebuilt on
// the next draw if the pixel size changed.
func (o *Ornament) SetDeviceScale(s float64) {
	if s > 0 {
		o.deviceScale = s
	}
}

// SurfaceSizePx is the backing surface edge length: ceil(size × deviceScale).
func (o *Ornament) SurfaceSizePx() int {
	return int(math.Ceil(o.cfg.Size * o.deviceScale))
}

// Elapsed is the time since the current mount started.
func (o *Ornament) Elapsed() time.Duration {
	return o.clock.Now() - o.lc.mountedAt
}

func (o *Ornament) Update() {
	if !o.lc.mounted {
		return
	}
	o.lc.frames++
	o.pulseNow = geom.PulseFactor(o.Elapsed(), o.cfg.Pulse)
}

// ScaleFactor is the glyph scale for the current frame: (size/160) × pulse.
func (o *Ornament) ScaleFactor() float64 {
	return geom.Scale(o.cfg.Size, o.pulseNow)
}

func (o *Ornament) ensureSurface() {
	px := o.SurfaceSizePx()
	if px <= 0 {
		return
	}
	if o.surface != nil && px == o.surfacePx {
		return
	}
	if o.surface != nil {
		o.surface.Deallocate()
	}
	o.surface = ebiten.NewImage(px, px)
	o.surfacePx = px
}

// Draw renders the sigil to the backing surface and composites it onto dst
// centered at (x, y) in device pixels. Unmounted instances and missing
// surfaces are a no-op.
func (o *Ornament) Draw(dst *ebiten.Image, x, y float64) {
	if !o.lc.mounted || dst == nil {
		return
	}
	o.ensureSurface()
	if o.surface == nil {
		return
	}

	o.surface.Clear()

	sc := o.ScaleFactor()
	half := o.cfg.Size / 2

	var tr ebiten.GeoM
	tr.Scale(sc, sc)
	tr.Rotate(o.cfg.Rotation)
	tr.Translate(half, half-config.OrnamentCenterBias)
	tr.Scale(o.deviceScale, o.deviceScale)

	unit := sc * o.deviceScale

	hx, hy := tr.Apply(0, 0)
	drawHalo(o.surface, hx, hy, config.HaloRadius*unit, o.cfg.Color)

	strokes, dots := geom.Glyph()
	for _, st := range strokes {
		strokeNeon(o.surface, st.Path, tr, unit, o.cfg.Color, NeonOptions{
			Width: st.Width,
			Blur:  o.cfg.Glow,
		})
	}
	for _, d := range dots {
		px, py := tr.Apply(d.At.X, d.At.Y)
		vector.DrawFilledCircle(o.surface, float32(px), float32(py), float32(d.R*unit), o.cfg.Color, true)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-float64(o.surfacePx)/2, y-float64(o.surfacePx)/2)
	dst.DrawImage(o.surface, op)
}
