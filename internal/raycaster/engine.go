// Package raycaster turns on-screen element boxes into occluders and draws
// the fan of light rays they leave visible.
package raycaster

import (
	"chosenoffset.com/lightfan/internal/core/shadows"
	"chosenoffset.com/lightfan/internal/render"
	"chosenoffset.com/lightfan/internal/render/lighting"
)

// Elements holds the layout boxes of the named on-screen elements. Any of
// them may be nil.
type Elements struct {
	TypeSwatch *shadows.Rect
	Profile    *shadows.Rect
	Nav        *shadows.Rect
	Media      *shadows.Rect
	Search     *shadows.Rect
	Black      *shadows.Rect
	Primary    *shadows.Rect
	Secondary  *shadows.Rect
}

// Ordered returns the elements in boundary construction order
func (e Elements) Ordered() []*shadows.Rect {
	return []*shadows.Rect{
		e.TypeSwatch,
		e.Profile,
		e.Nav,
		e.Media,
		e.Search,
		e.Black,
		e.Primary,
		e.Secondary,
	}
}

// Option configures an Engine
type Option func(*options)

type options struct {
	padding     float64
	rayCount    int
	debugRays   bool
	lightRadius float64
}

// WithPadding sets how far occluders extend past their element boxes
func WithPadding(p float64) Option {
	return func(o *options) { o.padding = p }
}

// WithRayCount overrides the number of rays the light casts
func WithRayCount(n int) Option {
	return func(o *options) { o.rayCount = n }
}

// WithDebugRays draws every ray out to the light's limit before the fan
func WithDebugRays(enabled bool) Option {
	return func(o *options) { o.debugRays = enabled }
}

// WithLightRadius sets the radius of the drawn light marker
func WithLightRadius(r float64) Option {
	return func(o *options) { o.lightRadius = r }
}

// Engine owns one light and the occluder boundaries built from the element
// boxes it was created with.
type Engine struct {
	light      *shadows.Light
	boundaries []shadows.Boundary
	opts       options
}

// New builds an engine for a width x height viewport. The light sits at
// light when non-nil, otherwise at (0.8*width, 0.15*height).
func New(width, height float64, elems Elements, light *shadows.Vector2, opts ...Option) *Engine {
	o := options{
		padding:     shadows.DefaultPadding,
		rayCount:    shadows.DefaultRayCount,
		lightRadius: lighting.DefaultRadius,
	}
	for _, opt := range opts {
		opt(&o)
	}

	src := lighting.NewPlacement(light).Resolve(width, height)

	e := &Engine{
		light:      shadows.NewLight(src.X, src.Y, src.Limit, shadows.WithRayCount(o.rayCount)),
		boundaries: shadows.BoundariesFromRects(elems.Ordered(), o.padding),
		opts:       o,
	}

	logger().Debug("raycaster: engine created",
		"width", width,
		"height", height,
		"boundaries", len(e.boundaries),
		"rays", len(e.light.Rays()),
		"light_x", src.X,
		"light_y", src.Y)

	return e
}

// Light returns the engine's light
func (e *Engine) Light() *shadows.Light {
	return e.light
}

// Boundaries returns the occluder boundaries in construction order
func (e *Engine) Boundaries() []shadows.Boundary {
	return e.boundaries
}

// MoveLight repositions the light, e.g. after a viewport resize
func (e *Engine) MoveLight(x, y float64) {
	e.light.MoveTo(x, y)
}

// Look computes the current fan of visibility segments
func (e *Engine) Look() []shadows.Segment {
	return shadows.Look(e.light, e.boundaries)
}

// Draw renders one frame: the boundaries, the light, then the fan
func (e *Engine) Draw(s render.Surface) {
	for _, b := range e.boundaries {
		b.Draw(s)
	}

	e.light.Draw(s, e.opts.lightRadius)

	if e.opts.debugRays {
		for _, r := range e.light.Rays() {
			r.Draw(s, e.light.Limit())
		}
	}

	for _, seg := range e.Look() {
		seg.Draw(s)
	}
}
