package render

// Surface is the 2D drawing surface the ray caster issues primitive draw
// calls to. It follows the canvas path model: build a path, then stroke or
// fill it. The caller owns the surface; implementations keep their own
// rendering state.
type Surface interface {
	// BeginPath discards the current path and starts a new one.
	BeginPath()

	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)

	// LineTo adds a straight line from the current point to (x, y).
	LineTo(x, y float64)

	// Stroke outlines the current path using the current line width.
	Stroke()

	// Ellipse adds an elliptical arc centred at (cx, cy) with radii rx, ry,
	// rotated by rotation, sweeping from startAngle to endAngle (radians).
	Ellipse(cx, cy, rx, ry, rotation, startAngle, endAngle float64)

	// Fill fills the current path.
	Fill()

	// SetLineWidth sets the width used by subsequent strokes.
	SetLineWidth(width float64)
}

// Drawer is anything that can draw itself onto a Surface.
type Drawer interface {
	Draw(s Surface)
}

// Game represents the frame loop contract the windowed runner calls into.
type Game interface {
	// Update is called every tick (typically 60 times per second).
	Update() error

	// Draw draws the frame onto the given surface.
	Draw(screen Surface)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the windowing backend that owns the frame loop.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the frame loop with the provided game.
	// This is a blocking call that runs until the window closes.
	RunGame(game Game) error
}
