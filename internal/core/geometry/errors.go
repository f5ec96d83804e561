package geometry

import "errors"

// Geometry validation errors
var (
	ErrTooFewVertices = errors.New("polygon needs at least 3 distinct vertices")
	ErrCollinear      = errors.New("polygon vertices are collinear")
	ErrNonFinite      = errors.New("coordinate is NaN or infinite")
	ErrNegativeRadius = errors.New("circle radius is negative")
)
