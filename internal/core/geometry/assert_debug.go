//go:build satdebug

package geometry

import (
	"fmt"
	"math"
)

// assertUnitAxis panics when axis is neither unit length nor zero.
func assertUnitAxis(axis Vector2) {
	m := axis.MagnitudeSquared()
	if m != 0 && math.Abs(m-1) > 1e-9 {
		panic(fmt.Sprintf("geometry: projection axis %v is not a unit vector", axis))
	}
}
