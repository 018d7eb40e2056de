package shadows

import (
	"math"

	"chosenoffset.com/lightfan/internal/render"
)

// DefaultRayCount is one ray per whole degree
const DefaultRayCount = 360

// LightOption configures a Light during construction
type LightOption func(*Light)

// WithRayCount overrides the number of rays cast around the full circle.
// Values below 1 are ignored.
func WithRayCount(n int) LightOption {
	return func(l *Light) {
		if n > 0 {
			l.rayCount = n
		}
	}
}

// Light is a point light source. It owns its position; every ray it
// generates holds a reference to that same position.
type Light struct {
	position *Vector2
	rays     []*Ray
	rayCount int
	limit    float64 // debug-draw length only
}

// NewLight creates a light at (x, y) and generates its rays once, in
// ascending angle order starting at 0°.
func NewLight(x, y, limit float64, opts ...LightOption) *Light {
	l := &Light{
		position: &Vector2{X: x, Y: y},
		rayCount: DefaultRayCount,
		limit:    limit,
	}
	for _, opt := range opts {
		opt(l)
	}

	step := 360.0 / float64(l.rayCount)
	l.rays = make([]*Ray, l.rayCount)
	for i := range l.rays {
		l.rays[i] = NewRay(l.position, DegToRad(float64(i)*step))
	}

	return l
}

// Position returns the light's current position
func (l *Light) Position() Vector2 {
	return *l.position
}

// MoveTo repositions the light. Rays follow without being rebuilt.
func (l *Light) MoveTo(x, y float64) {
	l.position.X = x
	l.position.Y = y
}

// Rays returns the rays in ascending angle order
func (l *Light) Rays() []*Ray {
	return l.rays
}

// Limit returns the length used when drawing rays for debugging
func (l *Light) Limit() float64 {
	return l.limit
}

// Draw renders the light as a small filled circle
func (l *Light) Draw(s render.Surface, radius float64) {
	s.SetLineWidth(1)
	s.BeginPath()
	s.Ellipse(l.position.X, l.position.Y, radius, radius, 0, 0, 2*math.Pi)
	s.Fill()
}
