package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/lightfan/internal/render"
)

// arcSegments is how many edges a stroked ellipse is flattened into
const arcSegments = 32

// Surface implements render.Surface on top of an ebiten.Image using the
// vector package. Only ellipses are filled; other subpaths are ignored by
// Fill.
type Surface struct {
	img       *ebiten.Image
	path      render.Path
	lineWidth float32
	clr       color.Color
}

// NewSurface creates a surface drawing onto img in clr
func NewSurface(img *ebiten.Image, clr color.Color) *Surface {
	return &Surface{img: img, lineWidth: 1, clr: clr}
}

var _ render.Surface = (*Surface)(nil)

// GetEbitenImage returns the underlying ebiten.Image.
func (s *Surface) GetEbitenImage() *ebiten.Image {
	return s.img
}

// SetColor changes the stroke and fill color
func (s *Surface) SetColor(clr color.Color) {
	s.clr = clr
}

// BeginPath discards the current path
func (s *Surface) BeginPath() {
	s.path.Reset()
}

// MoveTo starts a subpath
func (s *Surface) MoveTo(x, y float64) {
	s.path.MoveTo(x, y)
}

// LineTo adds a line
func (s *Surface) LineTo(x, y float64) {
	s.path.LineTo(x, y)
}

// Ellipse adds an elliptical arc
func (s *Surface) Ellipse(cx, cy, rx, ry, rotation, startAngle, endAngle float64) {
	s.path.AddEllipse(render.Ellipse{
		CX: cx, CY: cy, RX: rx, RY: ry,
		Rotation:   rotation,
		StartAngle: startAngle,
		EndAngle:   endAngle,
	})
}

// SetLineWidth sets the stroke width
func (s *Surface) SetLineWidth(width float64) {
	s.lineWidth = float32(width)
}

// Stroke draws every edge of the current path
func (s *Surface) Stroke() {
	for _, l := range s.path.Lines(arcSegments) {
		vector.StrokeLine(s.img,
			float32(l[0].X), float32(l[0].Y),
			float32(l[1].X), float32(l[1].Y),
			s.lineWidth, s.clr, false)
	}
}

// Fill draws each ellipse of the current path as a filled circle of the
// mean radius.
func (s *Surface) Fill() {
	for _, e := range s.path.Ellipses {
		r := float32((e.RX + e.RY) / 2)
		vector.DrawFilledCircle(s.img, float32(e.CX), float32(e.CY), r, s.clr, false)
	}
}

// EbitenEngine implements the render.Engine interface using Ebiten.
type EbitenEngine struct {
	background color.Color
	foreground color.Color
}

// NewEngine creates a new Ebiten-based window runner. Each frame the
// screen is cleared to background and drawn in foreground.
func NewEngine(background, foreground color.Color) render.Engine {
	return &EbitenEngine{background: background, foreground: foreground}
}

// SetWindowSize sets the window size in pixels.
func (e *EbitenEngine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *EbitenEngine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// SetWindowResizable enables or disables window resizing.
func (e *EbitenEngine) SetWindowResizable(resizable bool) {
	if resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	} else {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	}
}

// RunGame runs the game loop with the provided game.
func (e *EbitenEngine) RunGame(game render.Game) error {
	return ebiten.RunGame(&gameAdapter{game: game, engine: e})
}

// gameAdapter adapts a render.Game to ebiten.Game interface.
type gameAdapter struct {
	game   render.Game
	engine *EbitenEngine
}

// Update implements ebiten.Game.
func (a *gameAdapter) Update() error {
	return a.game.Update()
}

// Draw implements ebiten.Game.
func (a *gameAdapter) Draw(screen *ebiten.Image) {
	screen.Fill(a.engine.background)
	a.game.Draw(NewSurface(screen, a.engine.foreground))
}

// Layout implements ebiten.Game.
func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
