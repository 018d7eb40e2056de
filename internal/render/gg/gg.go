// Package gg adapts a gogpu/gg drawing context to render.Surface for
// headless rendering.
package gg

import (
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"

	"chosenoffset.com/lightfan/internal/render"
)

// Surface draws onto a *gg.Context
type Surface struct {
	dc  *gg.Context
	err error
}

// NewSurface wraps dc. The caller keeps ownership of dc.
func NewSurface(dc *gg.Context) *Surface {
	return &Surface{dc: dc}
}

// NewImageSurface creates a width x height context cleared to bg, drawing
// in fg.
func NewImageSurface(width, height int, bg, fg color.Color) *Surface {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	s := &Surface{dc: dc}
	s.keep(dc.Fill())
	dc.SetColor(fg)
	return s
}

var _ render.Surface = (*Surface)(nil)

// Context returns the wrapped context
func (s *Surface) Context() *gg.Context {
	return s.dc
}

// Err returns the first error reported by a stroke or fill
func (s *Surface) Err() error {
	return s.err
}

func (s *Surface) keep(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

// BeginPath discards the current path
func (s *Surface) BeginPath() {
	s.dc.ClearPath()
}

// MoveTo starts a subpath
func (s *Surface) MoveTo(x, y float64) {
	s.dc.MoveTo(x, y)
}

// LineTo adds a line
func (s *Surface) LineTo(x, y float64) {
	s.dc.LineTo(x, y)
}

// Stroke outlines the path
func (s *Surface) Stroke() {
	s.keep(s.dc.Stroke())
}

// Fill fills the path
func (s *Surface) Fill() {
	s.keep(s.dc.Fill())
}

// SetLineWidth sets the stroke width
func (s *Surface) SetLineWidth(width float64) {
	s.dc.SetLineWidth(width)
}

// Ellipse adds an elliptical arc. A full sweep becomes a closed ellipse.
func (s *Surface) Ellipse(cx, cy, rx, ry, rotation, startAngle, endAngle float64) {
	if rotation != 0 {
		s.dc.Push()
		defer s.dc.Pop()
		s.dc.RotateAbout(rotation, cx, cy)
	}
	if math.Abs(endAngle-startAngle) >= 2*math.Pi {
		s.dc.DrawEllipse(cx, cy, rx, ry)
		return
	}
	s.dc.DrawEllipticalArc(cx, cy, rx, ry, startAngle, endAngle)
}

// SavePNG writes the image to path
func (s *Surface) SavePNG(path string) error {
	if s.err != nil {
		return s.err
	}
	return s.dc.SavePNG(path)
}

// Image returns the rendered image
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}
