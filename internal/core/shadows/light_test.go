package shadows

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/lightfan/internal/render/record"
)

func TestNewLightGeneratesRaysInAngleOrder(t *testing.T) {
	l := NewLight(10, 20, 100)

	rays := l.Rays()
	require.Len(t, rays, DefaultRayCount)

	assert.Equal(t, Vector2{X: 1, Y: 0}, rays[0].Direction())

	down := rays[90].Direction()
	assert.InDelta(t, 0, down.X, tolerance)
	assert.InDelta(t, 1, down.Y, tolerance)

	left := rays[180].Direction()
	assert.InDelta(t, -1, left.X, tolerance)
	assert.InDelta(t, 0, left.Y, tolerance)

	for i, r := range rays {
		want := FromAngle(DegToRad(float64(i)))
		assert.InDelta(t, want.X, r.Direction().X, tolerance, "ray %d", i)
		assert.InDelta(t, want.Y, r.Direction().Y, tolerance, "ray %d", i)
	}
}

func TestWithRayCount(t *testing.T) {
	l := NewLight(0, 0, 1, WithRayCount(4))
	rays := l.Rays()
	require.Len(t, rays, 4)

	up := rays[3].Direction()
	assert.InDelta(t, 0, up.X, tolerance)
	assert.InDelta(t, -1, up.Y, tolerance)

	l = NewLight(0, 0, 1, WithRayCount(0))
	assert.Len(t, l.Rays(), DefaultRayCount)
}

func TestMoveToIsSeenByEveryRay(t *testing.T) {
	l := NewLight(1, 2, 50)
	rays := l.Rays()

	l.MoveTo(30, 40)

	assert.Equal(t, Vector2{X: 30, Y: 40}, l.Position())
	assert.Same(t, rays[0], l.Rays()[0])
	for _, r := range l.Rays() {
		assert.Equal(t, Vector2{X: 30, Y: 40}, r.Origin())
	}
	assert.Equal(t, 50.0, l.Limit())
}

func TestLightDraw(t *testing.T) {
	l := NewLight(3, 4, 10)
	rec := record.NewRecorder()

	l.Draw(rec, 5)

	require.Len(t, rec.Calls, 4)
	assert.Equal(t, record.Call{Op: record.OpSetLineWidth, Args: []float64{1}}, rec.Calls[0])
	assert.Equal(t, record.OpBeginPath, rec.Calls[1].Op)
	assert.Equal(t, record.Call{Op: record.OpEllipse, Args: []float64{3, 4, 5, 5, 0, 0, 2 * math.Pi}}, rec.Calls[2])
	assert.Equal(t, record.OpFill, rec.Calls[3].Op)
}

func TestRayDraw(t *testing.T) {
	l := NewLight(3, 4, 10)
	rec := record.NewRecorder()

	l.Rays()[0].Draw(rec, l.Limit())

	require.Len(t, rec.Calls, 4)
	assert.Equal(t, []float64{3, 4}, rec.Calls[1].Args)
	assert.Equal(t, []float64{13, 4}, rec.Calls[2].Args)
	assert.Equal(t, record.OpStroke, rec.Calls[3].Op)
}
