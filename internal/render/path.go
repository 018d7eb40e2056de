package render

import "math"

// Point is a path vertex
type Point struct {
	X, Y float64
}

// Ellipse is an elliptical arc added to a path
type Ellipse struct {
	CX, CY, RX, RY       float64
	Rotation             float64
	StartAngle, EndAngle float64
}

// Full reports whether the arc sweeps the whole ellipse
func (e Ellipse) Full() bool {
	return math.Abs(e.EndAngle-e.StartAngle) >= 2*math.Pi
}

// Flatten approximates the arc with n+1 points
func (e Ellipse) Flatten(n int) []Point {
	if n < 1 {
		n = 1
	}
	sin, cos := math.Sincos(e.Rotation)
	sweep := e.EndAngle - e.StartAngle
	pts := make([]Point, n+1)
	for i := 0; i <= n; i++ {
		a := e.StartAngle + sweep*float64(i)/float64(n)
		x := e.RX * math.Cos(a)
		y := e.RY * math.Sin(a)
		pts[i] = Point{
			X: e.CX + x*cos - y*sin,
			Y: e.CY + x*sin + y*cos,
		}
	}
	return pts
}

// Path accumulates canvas-style path commands for backends that draw
// straight lines and circles only.
type Path struct {
	Subpaths [][]Point
	Ellipses []Ellipse
}

// Reset clears the path
func (p *Path) Reset() {
	p.Subpaths = p.Subpaths[:0]
	p.Ellipses = p.Ellipses[:0]
}

// MoveTo starts a new subpath
func (p *Path) MoveTo(x, y float64) {
	p.Subpaths = append(p.Subpaths, []Point{{X: x, Y: y}})
}

// LineTo extends the current subpath. Without a current point it behaves
// like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.Subpaths) == 0 {
		p.MoveTo(x, y)
		return
	}
	last := len(p.Subpaths) - 1
	p.Subpaths[last] = append(p.Subpaths[last], Point{X: x, Y: y})
}

// AddEllipse records an elliptical arc
func (p *Path) AddEllipse(e Ellipse) {
	p.Ellipses = append(p.Ellipses, e)
}

// Lines returns every straight edge of the path as point pairs, with
// ellipses flattened into segmentsPerArc edges each.
func (p *Path) Lines(segmentsPerArc int) [][2]Point {
	var lines [][2]Point
	for _, sp := range p.Subpaths {
		for i := 1; i < len(sp); i++ {
			lines = append(lines, [2]Point{sp[i-1], sp[i]})
		}
	}
	for _, e := range p.Ellipses {
		pts := e.Flatten(segmentsPerArc)
		for i := 1; i < len(pts); i++ {
			lines = append(lines, [2]Point{pts[i-1], pts[i]})
		}
	}
	return lines
}
