// Package config provides the scene description the ray caster is built from.
// Scenes are loaded from JSON files so each layout can be rendered without
// code changes.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"sort"
	"strings"

	"golang.org/x/image/colornames"

	"chosenoffset.com/lightfan/internal/core/shadows"
	"chosenoffset.com/lightfan/internal/raycaster"
)

// Element names accepted in the "elements" map
const (
	ElementTypeSwatch = "typeSw"
	ElementProfile    = "profile"
	ElementNav        = "nav"
	ElementMedia      = "media"
	ElementSearch     = "search"
	ElementBlack      = "black"
	ElementPrimary    = "primary"
	ElementSecondary  = "secondary"
)

// Config holds everything needed to build and draw one scene
type Config struct {
	Name string `json:"name"`

	// Viewport
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Light
	Light    *LightConfig `json:"light,omitempty"` // Overrides the default position
	RayCount int          `json:"ray_count"`       // Rays around the full circle
	Radius   float64      `json:"light_radius"`    // Drawn marker radius

	// Occluders
	Padding  float64                  `json:"padding"`  // Outward padding per element
	Elements map[string]*shadows.Rect `json:"elements"` // Keyed by element name

	// Drawing
	DebugRays  bool   `json:"debug_rays"`
	Background string `json:"background"` // Color name, see colornames
	Foreground string `json:"foreground"`
}

// LightConfig pins the light at a fixed position
type LightConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DefaultConfig returns an empty 1280x800 scene
func DefaultConfig() *Config {
	return &Config{
		Name:       "default",
		Width:      1280,
		Height:     800,
		RayCount:   shadows.DefaultRayCount,
		Radius:     5,
		Padding:    shadows.DefaultPadding,
		Elements:   map[string]*shadows.Rect{},
		Background: "black",
		Foreground: "white",
	}
}

// LoadConfig loads a scene from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read scene config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse scene config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks element names, sizes and colors. Rectangle bounds are not
// checked.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %gx%g", c.Width, c.Height)
	}
	if c.RayCount < 1 {
		return fmt.Errorf("ray_count must be at least 1, got %d", c.RayCount)
	}

	var unknown []string
	for name := range c.Elements {
		if !isElementName(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown elements: %s", strings.Join(unknown, ", "))
	}

	if _, ok := colornames.Map[c.Background]; !ok {
		return fmt.Errorf("unknown background color %q", c.Background)
	}
	if _, ok := colornames.Map[c.Foreground]; !ok {
		return fmt.Errorf("unknown foreground color %q", c.Foreground)
	}

	return nil
}

func isElementName(name string) bool {
	switch name {
	case ElementTypeSwatch, ElementProfile, ElementNav, ElementMedia,
		ElementSearch, ElementBlack, ElementPrimary, ElementSecondary:
		return true
	}
	return false
}

// RaycasterElements maps the named rectangles onto the engine's elements
func (c *Config) RaycasterElements() raycaster.Elements {
	return raycaster.Elements{
		TypeSwatch: c.Elements[ElementTypeSwatch],
		Profile:    c.Elements[ElementProfile],
		Nav:        c.Elements[ElementNav],
		Media:      c.Elements[ElementMedia],
		Search:     c.Elements[ElementSearch],
		Black:      c.Elements[ElementBlack],
		Primary:    c.Elements[ElementPrimary],
		Secondary:  c.Elements[ElementSecondary],
	}
}

// LightOverride returns the pinned light position, or nil for the default
func (c *Config) LightOverride() *shadows.Vector2 {
	if c.Light == nil {
		return nil
	}
	return &shadows.Vector2{X: c.Light.X, Y: c.Light.Y}
}

// Colors resolves the background and foreground color names
func (c *Config) Colors() (bg, fg color.Color) {
	return colornames.Map[c.Background], colornames.Map[c.Foreground]
}

// Options returns the engine options described by the scene
func (c *Config) Options() []raycaster.Option {
	return []raycaster.Option{
		raycaster.WithPadding(c.Padding),
		raycaster.WithRayCount(c.RayCount),
		raycaster.WithDebugRays(c.DebugRays),
		raycaster.WithLightRadius(c.Radius),
	}
}

// NewEngine builds the ray caster for a width x height viewport
func (c *Config) NewEngine(width, height float64) *raycaster.Engine {
	return raycaster.New(width, height, c.RaycasterElements(), c.LightOverride(), c.Options()...)
}
