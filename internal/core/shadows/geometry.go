package shadows

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector2 is a mutable 2D point or direction
type Vector2 struct {
	X, Y float64
}

// NewVector2 returns the vector (x, y)
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// FromAngle returns the unit vector (cos θ, sin θ) for an angle in radians
func FromAngle(theta float64) Vector2 {
	return Vector2{X: math.Cos(theta), Y: math.Sin(theta)}
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return mgl64.DegToRad(deg)
}

func (v Vector2) vec() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

// Len returns the magnitude of v
func (v Vector2) Len() float64 {
	return v.vec().Len()
}

// Add returns v + o
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Normalize divides v by its magnitude in place.
// A zero-length vector is left unchanged.
func (v *Vector2) Normalize() {
	m := v.Len()
	if m == 0 {
		return
	}
	v.X /= m
	v.Y /= m
}

// Dist returns the Euclidean distance between v and o
func (v Vector2) Dist(o Vector2) float64 {
	return Distance(v, o)
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Vector2) float64 {
	return b.vec().Sub(a.vec()).Len()
}
