package geom

import "math"

// Crown layout. Petal i points along -π/2 + (i-3)·π/10, so the seven tips
// fan across the top arc from -π/2 - 3π/10 to -π/2 + 3π/10.
const (
	CrownPetalCount = 7
	CrownFanStep    = math.Pi / 10
	CrownTipRadius  = 42 // 36 plus the 6px outward flare

	crownBaseRadius = 16
	crownBaseSpread = 0.22
	crownCtrlRadius = 34
	crownCtrlSpread = 0.10
)

// Petal holds the five control points of one crown petal. The outline runs
// BaseL → Tip → BaseR as two quadratic curves.
type Petal struct {
	BaseL, CtrlL, Tip, CtrlR, BaseR Point
}

// CrownPetals returns the seven petals of the crown at reference size,
// centered on the local origin.
func CrownPetals() []Petal {
	petals := make([]Petal, CrownPetalCount)
	for i := range petals {
		a := -math.Pi/2 + float64(i-CrownPetalCount/2)*CrownFanStep
		petals[i] = Petal{
			BaseL: Polar(0, 0, crownBaseRadius, a-crownBaseSpread),
			CtrlL: Polar(0, 0, crownCtrlRadius, a-crownCtrlSpread),
			Tip:   Polar(0, 0, CrownTipRadius, a),
			CtrlR: Polar(0, 0, crownCtrlRadius, a+crownCtrlSpread),
			BaseR: Polar(0, 0, crownBaseRadius, a+crownBaseSpread),
		}
	}
	return petals
}

// Path converts a petal into its two-curve outline.
func (pt Petal) Path() Path {
	var p Path
	p.MoveTo(pt.BaseL.X, pt.BaseL.Y)
	p.QuadTo(pt.CtrlL.X, pt.CtrlL.Y, pt.Tip.X, pt.Tip.Y)
	p.QuadTo(pt.CtrlR.X, pt.CtrlR.Y, pt.BaseR.X, pt.BaseR.Y)
	return p
}

// Stroke is one neon-stroked part of the glyph. Width 0 means the neon
// primitive's default.
type Stroke struct {
	Path  Path
	Width float64
}

// Dot is a small filled accent circle.
type Dot struct {
	At Point
	R  float64
}

// Glyph returns the full sigil at reference size in local coordinates:
// the petal crown, the oval frame, the split vertical rod, the circlet,
// the pendant, and the two accent dots. All control points are fixed;
// only scale, rotation and color vary at render time.
func Glyph() (strokes []Stroke, dots []Dot) {
	for _, petal := range CrownPetals() {
		strokes = append(strokes, Stroke{Path: petal.Path()})
	}

	// Oval frame.
	strokes = append(strokes, Stroke{Path: Ellipse(0, 8, 24, 32)})

	// Vertical rod, split around the circlet.
	strokes = append(strokes,
		Stroke{Path: Line(0, -18, 0, -2)},
		Stroke{Path: Line(0, 10, 0, 34)},
	)

	// Circlet: crossbar plus a small circle in the rod gap.
	strokes = append(strokes,
		Stroke{Path: Line(-7, 4, 7, 4), Width: 1.8},
		Stroke{Path: Ellipse(0, 4, 4.5, 4.5), Width: 1.8},
	)

	// Pendant: two small ellipses and a teardrop below the frame.
	var tear Path
	tear.MoveTo(0, 48)
	tear.CubicTo(4.6, 51, 4.2, 56.5, 0, 60)
	tear.CubicTo(-4.2, 56.5, -4.6, 51, 0, 48)
	strokes = append(strokes,
		Stroke{Path: Ellipse(0, 40, 4, 2.6), Width: 1.8},
		Stroke{Path: Ellipse(0, 45, 2.8, 1.8), Width: 1.8},
		Stroke{Path: tear, Width: 1.8},
	)

	dots = []Dot{
		{At: Point{X: -14, Y: -6}, R: 1.6},
		{At: Point{X: 14, Y: -6}, R: 1.6},
	}
	return strokes, dots
}
