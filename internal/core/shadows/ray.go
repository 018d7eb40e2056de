package shadows

import "chosenoffset.com/lightfan/internal/render"

// Ray is a half-line probing for the nearest boundary. Its origin is the
// owning light's position, shared by reference, so moving the light moves
// every ray.
type Ray struct {
	origin *Vector2
	dir    Vector2
}

// NewRay creates a ray from origin pointing at angle (radians).
// origin is not copied.
func NewRay(origin *Vector2, angle float64) *Ray {
	return &Ray{origin: origin, dir: FromAngle(angle)}
}

// Origin returns the current origin of the ray
func (r *Ray) Origin() Vector2 {
	return *r.origin
}

// Direction returns the unit direction of the ray
func (r *Ray) Direction() Vector2 {
	return r.dir
}

// AimAt points the ray at (x, y)
func (r *Ray) AimAt(x, y float64) {
	r.dir = Vector2{X: x - r.origin.X, Y: y - r.origin.Y}
	r.dir.Normalize()
}

// Intersect returns the point where the ray crosses the boundary.
//
// The boundary is (x1,y1)-(x2,y2) and the ray's line is origin to
// origin+direction. A hit needs 0 < t < 1 along the boundary and u > 0
// along the ray. Comparisons are exact: parallel lines (den == 0) and hits
// landing exactly on a boundary endpoint report no intersection.
func (r *Ray) Intersect(b Boundary) (Vector2, bool) {
	x1, y1 := b.A.X, b.A.Y
	x2, y2 := b.B.X, b.B.Y

	x3, y3 := r.origin.X, r.origin.Y
	x4, y4 := r.origin.X+r.dir.X, r.origin.Y+r.dir.Y

	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if den == 0 {
		return Vector2{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / den
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / den
	if t > 0 && t < 1 && u > 0 {
		return Vector2{
			X: x1 + t*(x2-x1),
			Y: y1 + t*(y2-y1),
		}, true
	}

	return Vector2{}, false
}

// Draw strokes the ray from its origin out to limit units. Debug only.
func (r *Ray) Draw(s render.Surface, limit float64) {
	end := r.origin.Add(r.dir.Scale(limit))
	s.BeginPath()
	s.MoveTo(r.origin.X, r.origin.Y)
	s.LineTo(end.X, end.Y)
	s.Stroke()
}
