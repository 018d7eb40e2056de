package shadows

// Rect is the layout box of an on-screen element, in the same coordinate
// space as the viewport.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
}

// Boundary is an opaque segment that blocks light rays
type Boundary struct {
	A, B Vector2
}

// NewBoundary creates a boundary from (x1, y1) to (x2, y2)
func NewBoundary(x1, y1, x2, y2 float64) Boundary {
	return Boundary{A: Vector2{X: x1, Y: y1}, B: Vector2{X: x2, Y: y2}}
}

// Segment is a visibility segment: from the light position (A) to the
// nearest boundary hit found by one ray (B)
type Segment struct {
	A, B Vector2
}
