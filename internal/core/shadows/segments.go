package shadows

import "chosenoffset.com/lightfan/internal/render"

// DefaultPadding is how far each occluder rectangle is pushed outward
const DefaultPadding = 4.0

// BoundariesFromRects generates occluder boundaries for each present
// rectangle, in the order given. Nil entries are skipped, so the result
// always holds 4 boundaries per non-nil rectangle.
func BoundariesFromRects(rects []*Rect, padding float64) []Boundary {
	boundaries := make([]Boundary, 0, 4*len(rects))
	for _, r := range rects {
		if r == nil {
			continue
		}
		boundaries = append(boundaries, RectBoundaries(*r, padding)...)
	}
	return boundaries
}

// RectBoundaries traces the padded perimeter of r clockwise from the
// top-left corner: top, right, bottom, left.
//
// Inverted rectangles (right < left, bottom < top) are not rejected; they
// produce an inverted perimeter.
func RectBoundaries(r Rect, padding float64) []Boundary {
	left := r.Left - padding
	right := r.Right + padding
	top := r.Top - padding
	bottom := r.Bottom + padding

	return []Boundary{
		NewBoundary(left, top, right, top),
		NewBoundary(right, top, right, bottom),
		NewBoundary(right, bottom, left, bottom),
		NewBoundary(left, bottom, left, top),
	}
}

// Draw strokes the boundary as a 2-unit line
func (b Boundary) Draw(s render.Surface) {
	s.SetLineWidth(2)
	s.BeginPath()
	s.MoveTo(b.A.X, b.A.Y)
	s.LineTo(b.B.X, b.B.Y)
	s.Stroke()
}
