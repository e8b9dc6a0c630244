package config

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"neonsigil/internal/geom"
)

const (
	WindowWidth  = 960
	WindowHeight = 960
	WindowTitle  = "neonsigil - Space: pulse, R: rotate, S: screenshot, Esc/Q: quit"

	// Mandala base rings
	MandalaGlowRadius    = 170
	MandalaGlowThickness = 60
	MandalaSolidRadius   = 200
	MandalaSolidWidth    = 4
	MandalaDotRadius     = 230
	MandalaDotCount      = 160
	MandalaDotSize       = 1.6

	// Ornament rendering
	OrnamentCenterBias = 6  // upward shift matching the glyph's visual balance
	HaloRadius         = 70 // at scale 1, in CSS pixels

	DefaultSize     = geom.RefSize
	DefaultGlow     = 28
	DefaultColorHex = "#ff02e6"
)

var (
	MandalaGlowColor  = color.RGBA{R: 0xff, G: 0x02, B: 0xe6, A: 0xff}
	MandalaSolidColor = color.RGBA{R: 0xff, G: 0x5d, B: 0xf1, A: 0xff}
)

// Ornament is the full configuration of one ornament instance. Values are
// immutable per mount; changing any of them restarts the instance.
type Ornament struct {
	Size     float64
	Color    color.RGBA
	Glow     float64
	Rotation float64
	Pulse    bool
}

func DefaultOrnament() Ornament {
	c, _ := ParseHexColor(DefaultColorHex)
	return Ornament{
		Size:  DefaultSize,
		Color: c,
		Glow:  DefaultGlow,
	}
}

func (o Ornament) Validate() error {
	if o.Size <= 0 {
		return fmt.Errorf("ornament size must be positive, got %v", o.Size)
	}
	if o.Glow < 0 {
		return fmt.Errorf("ornament glow must be non-negative, got %v", o.Glow)
	}
	return nil
}

// ParseHexColor parses a #rgb or #rrggbb color string.
func ParseHexColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
