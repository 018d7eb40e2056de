package shadows

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectKnownPoint(t *testing.T) {
	origin := &Vector2{}
	ray := NewRay(origin, 0)

	pt, ok := ray.Intersect(NewBoundary(5, -5, 5, 5))
	require.True(t, ok)
	assert.InDelta(t, 5, pt.X, tolerance)
	assert.InDelta(t, 0, pt.Y, tolerance)
}

func TestIntersectDiagonal(t *testing.T) {
	// y = x crossed by the segment x + y = 4 at (2, 2)
	origin := &Vector2{}
	ray := NewRay(origin, math.Pi/4)

	pt, ok := ray.Intersect(NewBoundary(0, 4, 4, 0))
	require.True(t, ok)
	assert.InDelta(t, 2, pt.X, tolerance)
	assert.InDelta(t, 2, pt.Y, tolerance)
}

func TestIntersectParallel(t *testing.T) {
	right := Vector2{X: 1, Y: 0}
	down := Vector2{X: 0, Y: 1}

	tests := []struct {
		name     string
		dir      Vector2
		boundary Boundary
	}{
		{"horizontal above", right, NewBoundary(0, 1, 5, 1)},
		{"horizontal collinear", right, NewBoundary(2, 0, 5, 0)},
		{"horizontal collinear behind", right, NewBoundary(-5, 0, -2, 0)},
		{"horizontal reversed", right, NewBoundary(5, -3, -5, -3)},
		{"vertical", down, NewBoundary(3, 0, 3, 10)},
		{"vertical collinear", down, NewBoundary(0, 2, 0, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := &Ray{origin: &Vector2{}, dir: tt.dir}
			_, ok := ray.Intersect(tt.boundary)
			assert.False(t, ok)
		})
	}
}

func TestIntersectBehindOrigin(t *testing.T) {
	ray := NewRay(&Vector2{}, 0)
	_, ok := ray.Intersect(NewBoundary(-5, -5, -5, 5))
	assert.False(t, ok)
}

func TestIntersectEndpointsExcluded(t *testing.T) {
	ray := NewRay(&Vector2{}, 0)

	// The ray passes exactly through A (t == 0) and B (t == 1)
	_, ok := ray.Intersect(NewBoundary(5, 0, 5, 5))
	assert.False(t, ok)
	_, ok = ray.Intersect(NewBoundary(5, -5, 5, 0))
	assert.False(t, ok)
}

func TestIntersectMissesShortSegment(t *testing.T) {
	ray := NewRay(&Vector2{}, 0)
	_, ok := ray.Intersect(NewBoundary(5, 1, 5, 3))
	assert.False(t, ok)
}

func TestIntersectHasNoRangeLimit(t *testing.T) {
	ray := NewRay(&Vector2{}, 0)
	pt, ok := ray.Intersect(NewBoundary(1e9, -1, 1e9, 1))
	require.True(t, ok)
	assert.InDelta(t, 1e9, pt.X, 1e-3)
}

func TestAimAt(t *testing.T) {
	ray := NewRay(&Vector2{X: 1, Y: 1}, 0)
	ray.AimAt(4, 5)

	dir := ray.Direction()
	assert.InDelta(t, 0.6, dir.X, tolerance)
	assert.InDelta(t, 0.8, dir.Y, tolerance)
}

func TestRayFollowsSharedOrigin(t *testing.T) {
	origin := &Vector2{}
	ray := NewRay(origin, 0)
	b := NewBoundary(5, -5, 5, 5)

	origin.Y = 2
	assert.Equal(t, Vector2{X: 0, Y: 2}, ray.Origin())

	pt, ok := ray.Intersect(b)
	require.True(t, ok)
	assert.InDelta(t, 2, pt.Y, tolerance)

	// Move past the boundary: it is now behind the ray
	origin.X = 6
	_, ok = ray.Intersect(b)
	assert.False(t, ok)
}
