package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/lightfan/internal/config"
	"chosenoffset.com/lightfan/internal/core/shadows"
	"chosenoffset.com/lightfan/internal/render/record"
)

func TestNewUsesSceneSize(t *testing.T) {
	g := New(config.DefaultConfig())

	w, h := g.Layout(1280, 800)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 800, h)
	assert.NoError(t, g.Update())
}

func TestLayoutRebuildsEngineOnResize(t *testing.T) {
	g := New(config.DefaultConfig())
	before := g.Engine

	g.Layout(1280, 800)
	assert.Same(t, before, g.Engine)

	w, h := g.Layout(500, 200)
	assert.Equal(t, 500, w)
	assert.Equal(t, 200, h)
	require.NotSame(t, before, g.Engine)
	assert.InDelta(t, 400, g.Engine.Light().Position().X, 1e-9)
	assert.InDelta(t, 30, g.Engine.Light().Position().Y, 1e-9)
}

func TestPinnedLightSurvivesResize(t *testing.T) {
	scene := config.DefaultConfig()
	scene.Light = &config.LightConfig{X: 7, Y: 8}
	g := New(scene)

	g.Layout(300, 300)
	assert.Equal(t, shadows.Vector2{X: 7, Y: 8}, g.Engine.Light().Position())
}

func TestDraw(t *testing.T) {
	scene := config.DefaultConfig()
	scene.Elements[config.ElementNav] = &shadows.Rect{Top: 0, Left: 0, Bottom: 64, Right: 1280}
	g := New(scene)
	rec := record.NewRecorder()

	g.Draw(rec)
	g.Draw(rec)

	assert.Equal(t, 2, g.FrameCount)
	assert.Equal(t, 2, rec.Count(record.OpFill))
}
