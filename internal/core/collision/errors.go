package collision

import "errors"

var (
	ErrNilPolygon     = errors.New("resolver requires a polygon")
	ErrInvalidWorkers = errors.New("worker count must be positive")
)
