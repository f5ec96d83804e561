//go:build !satdebug

package geometry

// assertUnitAxis is checked only in satdebug builds.
func assertUnitAxis(Vector2) {}
