package shadows

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

func TestFromAngle(t *testing.T) {
	v := FromAngle(0)
	assert.Equal(t, 1.0, v.X)
	assert.Equal(t, 0.0, v.Y)

	v = FromAngle(math.Pi / 2)
	assert.InDelta(t, 0, v.X, tolerance)
	assert.InDelta(t, 1, v.Y, tolerance)

	v = FromAngle(math.Pi)
	assert.InDelta(t, -1, v.X, tolerance)
	assert.InDelta(t, 0, v.Y, tolerance)
}

func TestNormalize(t *testing.T) {
	v := NewVector2(3, 4)
	v.Normalize()
	assert.InDelta(t, 0.6, v.X, tolerance)
	assert.InDelta(t, 0.8, v.Y, tolerance)
	assert.InDelta(t, 1, v.Len(), tolerance)
}

func TestNormalizeZeroVector(t *testing.T) {
	v := NewVector2(0, 0)
	v.Normalize()
	assert.Equal(t, Vector2{}, v)
}

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Vector2{}, Vector2{X: 3, Y: 4}))
	assert.Equal(t, 5.0, NewVector2(3, 4).Dist(Vector2{}))
	assert.Equal(t, 0.0, Distance(Vector2{X: 2, Y: 2}, Vector2{X: 2, Y: 2}))
}

func TestVectorArithmetic(t *testing.T) {
	a := NewVector2(1, 2)
	b := NewVector2(3, 5)

	assert.Equal(t, Vector2{X: 4, Y: 7}, a.Add(b))
	assert.Equal(t, Vector2{X: 2, Y: 3}, b.Sub(a))
	assert.Equal(t, Vector2{X: 2, Y: 4}, a.Scale(2))
}

func TestDegToRad(t *testing.T) {
	assert.InDelta(t, math.Pi, DegToRad(180), tolerance)
	assert.InDelta(t, math.Pi/2, DegToRad(90), tolerance)
	assert.Equal(t, 0.0, DegToRad(0))
}
