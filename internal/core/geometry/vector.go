package geometry

import "math"

// Vector2 is an immutable 2D vector. Every operation returns a new value.
type Vector2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Vec creates a new Vector2.
func Vec(x, y float64) Vector2 { return Vector2{X: x, Y: y} }

// Add returns v + other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale multiplies both components by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) Dot(other Vector2) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vector2) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// DistanceSquared returns the squared Euclidean distance between v and other.
func (v Vector2) DistanceSquared(other Vector2) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return dx*dx + dy*dy
}

// Unit returns v scaled to length 1, or the zero vector when v has no length.
func (v Vector2) Unit() Vector2 {
	m := v.Magnitude()
	if m <= 0 {
		return Vector2{}
	}
	return Vector2{X: v.X / m, Y: v.Y / m}
}

// Normal rotates v 90 degrees counter-clockwise. The result is not normalized.
func (v Vector2) Normal() Vector2 {
	return Vector2{X: -v.Y, Y: v.X}
}

// Angle returns the direction of v in radians.
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate rotates v counter-clockwise about the origin by rad radians.
func (v Vector2) Rotate(rad float64) Vector2 {
	sin, cos := math.Sincos(rad)
	return Vector2{X: cos*v.X - sin*v.Y, Y: sin*v.X + cos*v.Y}
}

// IsZero reports whether both components are exactly zero.
func (v Vector2) IsZero() bool { return v.X == 0 && v.Y == 0 }

func (v Vector2) isFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
