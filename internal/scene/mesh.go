package scene

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"neonsigil/internal/geom"
)

// Ebitengine has no gradient fills, so gradients are rendered as
// vertex-colored triangle meshes textured with a single white pixel.

const ringSegments = 96

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

func whitePixel() *ebiten.Image {
	whiteOnce.Do(func() {
		whiteImage := ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

func gradientVertex(x, y float64, c color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 255,
		ColorG: float32(c.G) / 255,
		ColorB: float32(c.B) / 255,
		ColorA: float32(c.A) / 255,
	}
}

// drawGlowRing fills the annulus [r-thickness/2, r+thickness/2] with the
// glow stop table, composited additively so overlapping glow layers brighten.
func drawGlowRing(dst *ebiten.Image, cx, cy, r, thickness float64, c color.RGBA) {
	stops := geom.GlowStops(c)
	inner := r - thickness/2

	var vs []ebiten.Vertex
	var is []uint16
	for b := 0; b < len(stops)-1; b++ {
		r0 := inner + stops[b].Offset*thickness
		r1 := inner + stops[b+1].Offset*thickness
		base := uint16(len(vs))
		for i := 0; i <= ringSegments; i++ {
			a := float64(i) * 2 * math.Pi / ringSegments
			sin, cos := math.Sincos(a)
			vs = append(vs,
				gradientVertex(cx+cos*r0, cy+sin*r0, stops[b].Color),
				gradientVertex(cx+cos*r1, cy+sin*r1, stops[b+1].Color),
			)
		}
		for i := 0; i < ringSegments; i++ {
			o := base + uint16(2*i)
			is = append(is, o, o+1, o+2, o+1, o+3, o+2)
		}
	}

	op := &ebiten.DrawTrianglesOptions{
		Blend:          ebiten.BlendLighter,
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		AntiAlias:      true,
	}
	dst.DrawTriangles(vs, is, whitePixel(), op)
}

// drawHalo fills a disc with the halo stop table as a triangle fan fading
// from the center color to transparent at the rim.
func drawHalo(dst *ebiten.Image, cx, cy, r float64, c color.RGBA) {
	stops := geom.HaloStops(c)

	vs := []ebiten.Vertex{gradientVertex(cx, cy, stops[0].Color)}
	var is []uint16
	for i := 0; i <= ringSegments; i++ {
		a := float64(i) * 2 * math.Pi / ringSegments
		sin, cos := math.Sincos(a)
		vs = append(vs, gradientVertex(cx+cos*r, cy+sin*r, stops[len(stops)-1].Color))
	}
	for i := 1; i <= ringSegments; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}

	op := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		AntiAlias:      true,
	}
	dst.DrawTriangles(vs, is, whitePixel(), op)
}
