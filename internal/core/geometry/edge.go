package geometry

import "math"

// Epsilon is the length below which an edge extent is treated as zero.
const Epsilon = 1.0e-6

// Edge is a directed segment between two polygon vertices.
type Edge struct {
	From Vector2
	To   Vector2
}

// Delta returns To - From.
func (e Edge) Delta() Vector2 { return e.To.Sub(e.From) }

// IsDegenerate reports whether both the x and y extents are below Epsilon.
func (e Edge) IsDegenerate() bool {
	d := e.Delta()
	return math.Abs(d.X) < Epsilon && math.Abs(d.Y) < Epsilon
}

// CrossesUpward reports whether e rises through the scanline y.
// The interval is half-open so a vertex shared by two edges is counted once.
func (e Edge) CrossesUpward(y float64) bool {
	return e.From.Y <= y && y < e.To.Y
}

// CrossesDownward reports whether e falls through the scanline y.
func (e Edge) CrossesDownward(y float64) bool {
	return e.To.Y <= y && y < e.From.Y
}

// XIntersect returns the x coordinate at which a ray cast in +x from origin
// meets the line through e. ok is false when the edge x extent is below
// Epsilon; such edges never register a crossing.
func (e Edge) XIntersect(origin Vector2) (x float64, ok bool) {
	d := e.Delta()
	if math.Abs(d.X) < Epsilon {
		return 0, false
	}
	t := (origin.Y - e.From.Y) / d.Y
	return e.From.X + t*d.X, true
}
