package geometry

import (
	"fmt"
	"math"
)

// Circle is a disc with a center and a non-negative radius.
type Circle struct {
	Center Vector2 `json:"center" yaml:"center"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// NewCircle validates and returns a circle.
func NewCircle(center Vector2, radius float64) (Circle, error) {
	if !center.isFinite() || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return Circle{}, ErrNonFinite
	}
	if radius < 0 {
		return Circle{}, fmt.Errorf("%w: %g", ErrNegativeRadius, radius)
	}
	return Circle{Center: center, Radius: radius}, nil
}

// ProjectionExtrema returns the circle's shadow on axis. The radius offset is
// only correct when axis is a unit vector.
func (c Circle) ProjectionExtrema(axis Vector2) (lo, hi float64) {
	assertUnitAxis(axis)
	d := c.Center.Dot(axis)
	return d - c.Radius, d + c.Radius
}
