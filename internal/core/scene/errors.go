package scene

import "errors"

var (
	ErrNoShape        = errors.New("scene must define a polygon or an airfoil")
	ErrAmbiguousShape = errors.New("scene defines both a polygon and an airfoil")
	ErrUnknownFormat  = errors.New("unknown scene file format")
	ErrInvalidScene   = errors.New("invalid scene")
)
