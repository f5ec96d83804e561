package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2_Arithmetic(t *testing.T) {
	a := Vec(3, 4)
	b := Vec(-1, 2)

	assert.Equal(t, Vec(2, 6), a.Add(b))
	assert.Equal(t, Vec(4, 2), a.Sub(b))
	assert.Equal(t, Vec(6, 8), a.Scale(2))
	assert.Equal(t, 5.0, a.Dot(b))
	assert.Equal(t, 25.0, a.MagnitudeSquared())
	assert.Equal(t, 5.0, a.Magnitude())
	assert.Equal(t, 20.0, a.DistanceSquared(b))

	// Operands are values and stay untouched.
	assert.Equal(t, Vec(3, 4), a)
}

func TestVector2_Unit(t *testing.T) {
	u := Vec(3, 4).Unit()
	assert.InDelta(t, 0.6, u.X, 1e-15)
	assert.InDelta(t, 0.8, u.Y, 1e-15)
	assert.InDelta(t, 1.0, u.Magnitude(), 1e-15)

	assert.Equal(t, Vector2{}, Vector2{}.Unit(), "zero vector degrades to zero")
}

func TestVector2_Normal(t *testing.T) {
	n := Vec(2, 1).Normal()
	assert.Equal(t, Vec(-1, 2), n)
	assert.Equal(t, 0.0, n.Dot(Vec(2, 1)))
	assert.Equal(t, 5.0, n.MagnitudeSquared(), "normal is not normalized")
}

func TestVector2_RotateAndAngle(t *testing.T) {
	r := Vec(1, 0).Rotate(math.Pi / 2)
	assert.InDelta(t, 0, r.X, 1e-15)
	assert.InDelta(t, 1, r.Y, 1e-15)
	assert.InDelta(t, math.Pi/2, r.Angle(), 1e-15)
	assert.True(t, Vector2{}.IsZero())
}
