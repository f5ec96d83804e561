package collision

import "github.com/zeusync/wingworks/internal/core/geometry"

// VertexAxis is the EdgeIndex reported when the nearest-vertex axis produced
// the minimum overlap.
const VertexAxis = -1

// Resolution is the outcome of testing one circle against the polygon.
// When Hit is false the shapes are separated or merely touching and the
// other fields are zero.
type Resolution struct {
	// MTV moves the circle out of the polygon along the axis of least
	// penetration. Moving the polygon by -MTV works equally.
	MTV geometry.Vector2 `json:"mtv"`
	Hit bool             `json:"hit"`
	// EdgeIndex is the polygon edge whose normal produced MTV, or VertexAxis.
	EdgeIndex int `json:"edge"`
}

// Vector returns the MTV and whether there was a collision.
func (r Resolution) Vector() (geometry.Vector2, bool) {
	return r.MTV, r.Hit
}

// Depth returns the penetration depth, zero when there is no hit.
func (r Resolution) Depth() float64 {
	if !r.Hit {
		return 0
	}
	return r.MTV.Magnitude()
}

func miss() Resolution {
	return Resolution{EdgeIndex: VertexAxis}
}
