package geometry

import (
	"fmt"
	"math"
)

// naca2412 holds the NACA 2412 section outline, leading edge first, upper
// surface then lower surface. A few points near the trailing edge are omitted.
var naca2412 = [][2]float64{
	{0.0000, 0.0000},
	{0.0092, 0.0188},
	{0.0403, 0.0373},
	{0.0920, 0.0543},
	{0.1622, 0.0679},
	{0.2478, 0.0766},
	{0.3447, 0.0792},
	{0.4480, 0.0758},
	{0.5531, 0.0681},
	{0.6557, 0.0573},
	{0.7512, 0.0448},
	{0.8356, 0.0318},
	{0.9053, 0.0198},
	{1.0001, 0.0013},
	{0.9037, -0.0080},
	{0.8335, -0.0128},
	{0.7488, -0.0184},
	{0.6534, -0.0245},
	{0.5514, -0.0306},
	{0.4474, -0.0360},
	{0.3463, -0.0399},
	{0.2522, -0.0422},
	{0.1686, -0.0417},
	{0.0990, -0.0375},
	{0.0462, -0.0292},
	{0.0126, -0.0166},
}

// referenceFoil is a coarse foil outline whose last vertex repeats the first.
var referenceFoil = [][2]float64{
	{0.0, 0.0},
	{0.02, 0.03},
	{0.04275, 0.05},
	{0.1, 0.07},
	{0.175, 0.087},
	{0.25, 0.09},
	{0.425, 0.07},
	{1.0, -0.07},
	{0.5, -0.055},
	{0.125, -0.035},
	{0.04275, -0.03},
	{0.02, -0.02},
	{0.0, 0.0},
}

// NACA2412 builds a NACA 2412 airfoil polygon with chord width. The section
// is normalized to its chord box, pitched nose-up by alphaRad about the box's
// bottom-left corner, then scaled and placed with that corner at (left, bottom).
func NACA2412(left, bottom, width, alphaRad float64) (*Polygon, error) {
	if width <= 0 || math.IsNaN(width) {
		return nil, fmt.Errorf("airfoil width must be positive, got %g", width)
	}

	xMin, xMax, yMin := math.Inf(1), math.Inf(-1), math.Inf(1)
	for _, c := range naca2412 {
		xMin = math.Min(xMin, c[0])
		xMax = math.Max(xMax, c[0])
		yMin = math.Min(yMin, c[1])
	}
	chord := xMax - xMin

	origin := Vec(left, bottom)
	vertices := make([]Vector2, len(naca2412))
	for i, c := range naca2412 {
		normed := Vec((c[0]-xMin)/chord, (c[1]-yMin)/chord)
		vertices[i] = normed.Rotate(-alphaRad).Scale(width).Add(origin)
	}
	return NewPolygon(vertices...)
}

// ReferenceFoil returns the coarse 10-unit foil used for regression checks.
// Its vertex list closes on itself, so it has one degenerate edge.
func ReferenceFoil() *Polygon {
	vertices := make([]Vector2, len(referenceFoil))
	for i, c := range referenceFoil {
		vertices[i] = Vec(c[0]*10, c[1]*10)
	}
	return MustPolygon(vertices...)
}
