package scene

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"neonsigil/internal/geom"
)

// Neon stroke defaults. Every glyph line is drawn twice: a wide glow pass
// fanned out to the blur radius with falling alpha, then a thin crisp core.
const (
	neonDefaultWidth    = 2.2
	neonGlowWidthFactor = 2.6
	neonGlowLayers      = 4
	neonGlowAlpha       = 0.35
)

// NeonOptions tunes one neon stroke. Zero values take the defaults: Width
// 2.2, Alpha 1. Blur 0 collapses the glow pass to a single wide stroke.
type NeonOptions struct {
	Width float64
	Blur  float64
	Alpha float64
}

// strokeNeon draws path p through transform tr with the two-pass neon
// technique. unit is the CSS-pixel to device-pixel factor applied to widths.
func strokeNeon(dst *ebiten.Image, p geom.Path, tr ebiten.GeoM, unit float64, c color.RGBA, opt NeonOptions) {
	if opt.Width <= 0 {
		opt.Width = neonDefaultWidth
	}
	if opt.Alpha <= 0 {
		opt.Alpha = 1
	}

	glowWidth := opt.Width * neonGlowWidthFactor
	if opt.Blur <= 0 {
		strokePath(dst, p, tr, glowWidth*unit, geom.WithAlpha(c, opt.Alpha*neonGlowAlpha))
	} else {
		for i := 0; i < neonGlowLayers; i++ {
			t := float64(i) / neonGlowLayers
			w := glowWidth + opt.Blur*t
			a := opt.Alpha * neonGlowAlpha * (1 - t) * (1 - t)
			strokePath(dst, p, tr, w*unit, geom.WithAlpha(c, a))
		}
	}

	strokePath(dst, p, tr, opt.Width*unit, geom.WithAlpha(c, opt.Alpha))
}

// strokePath strokes p with round caps and joins after mapping every control
// point through tr.
func strokePath(dst *ebiten.Image, p geom.Path, tr ebiten.GeoM, width float64, c color.RGBA) {
	if dst == nil || len(p) == 0 || width <= 0 {
		return
	}

	var vp vector.Path
	for _, seg := range p {
		switch seg.Op {
		case geom.MoveTo:
			x, y := tr.Apply(seg.Pts[0].X, seg.Pts[0].Y)
			vp.MoveTo(float32(x), float32(y))
		case geom.LineTo:
			x, y := tr.Apply(seg.Pts[0].X, seg.Pts[0].Y)
			vp.LineTo(float32(x), float32(y))
		case geom.QuadTo:
			cx, cy := tr.Apply(seg.Pts[0].X, seg.Pts[0].Y)
			x, y := tr.Apply(seg.Pts[1].X, seg.Pts[1].Y)
			vp.QuadTo(float32(cx), float32(cy), float32(x), float32(y))
		case geom.CubicTo:
			c1x, c1y := tr.Apply(seg.Pts[0].X, seg.Pts[0].Y)
			c2x, c2y := tr.Apply(seg.Pts[1].X, seg.Pts[1].Y)
			x, y := tr.Apply(seg.Pts[2].X, seg.Pts[2].Y)
			vp.CubicTo(float32(c1x), float32(c1y), float32(c2x), float32(c2y), float32(x), float32(y))
		}
	}

	vs, is := vp.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    float32(width),
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	})
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}

	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		AntiAlias:      true,
	}
	dst.DrawTriangles(vs, is, whitePixel(), op)
}
