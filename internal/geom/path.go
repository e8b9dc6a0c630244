package geom

// Op identifies a path segment kind.
type Op int

const (
	MoveTo Op = iota
	LineTo
	QuadTo
	CubicTo
)

// Segment is one path command. MoveTo/LineTo use Pts[0]; QuadTo uses Pts[0]
// (control) and Pts[1] (end); CubicTo uses all three.
type Segment struct {
	Op  Op
	Pts [3]Point
}

// Path is a renderer-agnostic sequence of path commands. Keeping the glyph
// as plain data lets geometry be tested without a drawing surface.
type Path []Segment

func (p *Path) MoveTo(x, y float64) {
	*p = append(*p, Segment{Op: MoveTo, Pts: [3]Point{{X: x, Y: y}}})
}

func (p *Path) LineTo(x, y float64) {
	*p = append(*p, Segment{Op: LineTo, Pts: [3]Point{{X: x, Y: y}}})
}

func (p *Path) QuadTo(cx, cy, x, y float64) {
	*p = append(*p, Segment{Op: QuadTo, Pts: [3]Point{{X: cx, Y: cy}, {X: x, Y: y}}})
}

func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	*p = append(*p, Segment{Op: CubicTo, Pts: [3]Point{{X: c1x, Y: c1y}, {X: c2x, Y: c2y}, {X: x, Y: y}}})
}

// kappa is the control-point offset factor approximating a quarter circle
// with a cubic bezier.
const kappa = 0.5522847498307936

// Ellipse builds a closed ellipse path from four cubic segments, starting at
// the rightmost point and winding clockwise in screen coordinates.
func Ellipse(cx, cy, rx, ry float64) Path {
	ox := rx * kappa
	oy := ry * kappa
	var p Path
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	return p
}

// Line builds a single straight segment path.
func Line(x0, y0, x1, y1 float64) Path {
	var p Path
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	return p
}
