package shadows

import (
	"math"

	"chosenoffset.com/lightfan/internal/render"
)

// Hit is the nearest boundary intersection found by one ray
type Hit struct {
	Ray      int // Index into the light's rays
	Boundary int // Index into the boundary list
	Point    Vector2
	Dist     float64
}

// Cast tests every ray of the light against every boundary and returns the
// nearest hit per ray, in ray order. Rays that hit nothing are skipped.
//
// Distances are compared with a strict less-than, so on equal distance the
// boundary earlier in the list wins.
func Cast(light *Light, boundaries []Boundary) []Hit {
	pos := light.Position()
	var hits []Hit

	for i, ray := range light.Rays() {
		// Find closest intersection
		closest := Hit{Ray: i, Boundary: -1, Dist: math.Inf(1)}

		for j, b := range boundaries {
			pt, ok := ray.Intersect(b)
			if !ok {
				continue
			}
			if d := pos.Dist(pt); d < closest.Dist {
				closest.Boundary = j
				closest.Point = pt
				closest.Dist = d
			}
		}

		if closest.Boundary >= 0 {
			hits = append(hits, closest)
		}
	}

	return hits
}

// Look returns the fan of visibility segments: one segment from the light
// to each ray's nearest hit, in ray order. The fan usually has gaps and is
// not a closed polygon. Nothing is cached between calls.
func Look(light *Light, boundaries []Boundary) []Segment {
	hits := Cast(light, boundaries)
	if len(hits) == 0 {
		return nil
	}

	pos := light.Position()
	fan := make([]Segment, len(hits))
	for i, h := range hits {
		fan[i] = Segment{A: pos, B: h.Point}
	}
	return fan
}

// Draw strokes the segment
func (s Segment) Draw(surface render.Surface) {
	surface.BeginPath()
	surface.MoveTo(s.A.X, s.A.Y)
	surface.LineTo(s.B.X, s.B.Y)
	surface.Stroke()
}
