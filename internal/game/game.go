package game

import (
	"chosenoffset.com/lightfan/internal/config"
	"chosenoffset.com/lightfan/internal/raycaster"
	"chosenoffset.com/lightfan/internal/render"
)

// Game holds the scene and the engine drawing it every frame.
type Game struct {
	Scene  *config.Config
	Engine *raycaster.Engine

	ScreenWidth  int
	ScreenHeight int

	// Debug
	FrameCount int
}

// New creates a game for scene at its configured viewport size.
func New(scene *config.Config) *Game {
	g := &Game{Scene: scene}
	g.resize(int(scene.Width), int(scene.Height))
	return g
}

// Update does nothing; the fan only changes when the layout does.
func (g *Game) Update() error {
	return nil
}

// Layout tracks the window size. The engine is rebuilt when it changes
// because the default light position depends on the viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.ScreenWidth || outsideHeight != g.ScreenHeight {
		g.resize(outsideWidth, outsideHeight)
	}
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) resize(width, height int) {
	g.ScreenWidth = width
	g.ScreenHeight = height
	g.Engine = g.Scene.NewEngine(float64(width), float64(height))
}

// Draw renders one frame.
func (g *Game) Draw(screen render.Surface) {
	g.FrameCount++
	g.Engine.Draw(screen)
}
