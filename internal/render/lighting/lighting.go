package lighting

import "chosenoffset.com/lightfan/internal/core/shadows"

// Default light placement as a fraction of the viewport
const (
	DefaultXFraction = 0.8
	DefaultYFraction = 0.15
)

// DefaultRadius is the radius of the drawn light marker
const DefaultRadius = 5.0

// LightSource describes where the light sits and how its marker looks
type LightSource struct {
	X      float64 // Viewport X position
	Y      float64 // Viewport Y position
	Radius float64 // Marker radius
	Limit  float64 // Debug ray length
}

// Placement resolves the light position for a viewport. A pinned override
// wins over the viewport-derived default.
type Placement struct {
	override *shadows.Vector2
}

// NewPlacement creates a placement. override may be nil.
func NewPlacement(override *shadows.Vector2) *Placement {
	p := &Placement{}
	if override != nil {
		o := *override
		p.override = &o
	}
	return p
}

// Pin fixes the light at (x, y) regardless of viewport size
func (p *Placement) Pin(x, y float64) {
	p.override = &shadows.Vector2{X: x, Y: y}
}

// Unpin returns to the viewport-derived default
func (p *Placement) Unpin() {
	p.override = nil
}

// IsPinned reports whether an override is in effect
func (p *Placement) IsPinned() bool {
	return p.override != nil
}

// Resolve returns the light source for a width x height viewport
func (p *Placement) Resolve(width, height float64) LightSource {
	src := LightSource{
		X:      width * DefaultXFraction,
		Y:      height * DefaultYFraction,
		Radius: DefaultRadius,
		Limit:  max(width, height),
	}
	if p.override != nil {
		src.X = p.override.X
		src.Y = p.override.Y
	}
	return src
}
