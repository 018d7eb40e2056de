// Package tui rasterises surface calls into terminal cells.
package tui

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/lightfan/internal/render"
)

// Glyphs used for thin strokes, thick strokes and fills
const (
	ThinRune  = '·'
	ThickRune = '█'
	FillRune  = '●'
)

// CellSetter is the part of tcell.Screen the surface writes to
type CellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Surface maps a world-space viewport onto a cols x rows cell grid
type Surface struct {
	screen     CellSetter
	path       render.Path
	cols, rows int
	sx, sy     float64
	lineWidth  float64
	style      tcell.Style
}

// NewSurface creates a surface that scales a worldW x worldH viewport into
// cols x rows cells.
func NewSurface(screen CellSetter, worldW, worldH float64, cols, rows int) *Surface {
	s := &Surface{
		screen:    screen,
		cols:      cols,
		rows:      rows,
		lineWidth: 1,
		style:     tcell.StyleDefault,
	}
	if worldW > 0 {
		s.sx = float64(cols) / worldW
	}
	if worldH > 0 {
		s.sy = float64(rows) / worldH
	}
	return s
}

var _ render.Surface = (*Surface)(nil)

// SetStyle changes the style of subsequently drawn cells
func (s *Surface) SetStyle(style tcell.Style) {
	s.style = style
}

// BeginPath discards the current path
func (s *Surface) BeginPath() { s.path.Reset() }

// MoveTo starts a subpath
func (s *Surface) MoveTo(x, y float64) { s.path.MoveTo(x, y) }

// LineTo adds a line
func (s *Surface) LineTo(x, y float64) { s.path.LineTo(x, y) }

// SetLineWidth picks the stroke glyph: widths of 2 or more draw solid blocks
func (s *Surface) SetLineWidth(width float64) { s.lineWidth = width }

// Ellipse adds an elliptical arc
func (s *Surface) Ellipse(cx, cy, rx, ry, rotation, startAngle, endAngle float64) {
	s.path.AddEllipse(render.Ellipse{
		CX: cx, CY: cy, RX: rx, RY: ry,
		Rotation:   rotation,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	})
}

// Stroke plots every edge of the current path
func (s *Surface) Stroke() {
	r := ThinRune
	if s.lineWidth >= 2 {
		r = ThickRune
	}
	for _, l := range s.path.Lines(8) {
		x0, y0 := s.cell(l[0])
		x1, y1 := s.cell(l[1])
		Line(x0, y0, x1, y1, func(x, y int) {
			s.set(x, y, r)
		})
	}
}

// Fill marks the centre cell of each ellipse
func (s *Surface) Fill() {
	for _, e := range s.path.Ellipses {
		x, y := s.cell(render.Point{X: e.CX, Y: e.CY})
		s.set(x, y, FillRune)
	}
}

func (s *Surface) cell(p render.Point) (int, int) {
	return int(math.Floor(p.X * s.sx)), int(math.Floor(p.Y * s.sy))
}

func (s *Surface) set(x, y int, r rune) {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return
	}
	s.screen.SetContent(x, y, r, nil, s.style)
}

// Line visits every cell on the Bresenham line from (x0, y0) to (x1, y1),
// both ends included.
func Line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
