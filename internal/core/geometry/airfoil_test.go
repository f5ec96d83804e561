package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNACA2412(t *testing.T) {
	foil, err := NACA2412(0, 0, 100, 0)
	require.NoError(t, err)

	assert.Equal(t, 26, foil.Len())
	assert.Len(t, foil.Axes(), 26)

	bb := foil.BoundingBox()
	assert.InDelta(t, 0, bb.Min.X, 1e-12)
	assert.InDelta(t, 0, bb.Min.Y, 1e-12)
	assert.InDelta(t, 100, bb.Width(), 1e-9)
	assert.InDelta(t, 12.138786121387863, bb.Height(), 1e-9)

	assert.True(t, foil.Contains(Vec(50, 5)))
	assert.True(t, foil.Contains(Vec(30, 8)))
	assert.False(t, foil.Contains(Vec(50, 20)))
	assert.False(t, foil.Contains(Vec(99, 0.5)))
	assert.False(t, foil.Contains(Vec(-1, 4)))
}

func TestNACA2412_AngleOfAttack(t *testing.T) {
	level, err := NACA2412(0, 0, 100, 0)
	require.NoError(t, err)
	pitched, err := NACA2412(0, 0, 100, 10*math.Pi/180)
	require.NoError(t, err)

	trailingLevel := level.Vertices()[13]
	trailingPitched := pitched.Vertices()[13]
	assert.InDelta(t, 100.0, trailingLevel.X, 1e-9)
	assert.InDelta(t, 4.349565043495652, trailingLevel.Y, 1e-9)
	assert.InDelta(t, 99.2360693446676, trailingPitched.X, 1e-9)
	assert.InDelta(t, -13.081332389627635, trailingPitched.Y, 1e-9)
}

func TestNACA2412_Offset(t *testing.T) {
	foil, err := NACA2412(10, 20, 50, 0)
	require.NoError(t, err)
	bb := foil.BoundingBox()
	assert.InDelta(t, 10, bb.Min.X, 1e-12)
	assert.InDelta(t, 20, bb.Min.Y, 1e-12)
	assert.InDelta(t, 60, bb.Max.X, 1e-9)
}

func TestNACA2412_InvalidWidth(t *testing.T) {
	_, err := NACA2412(0, 0, 0, 0)
	require.Error(t, err)
}

func TestReferenceFoil(t *testing.T) {
	foil := ReferenceFoil()
	v := foil.Vertices()
	assert.Equal(t, v[0], v[len(v)-1])
	assert.InDelta(t, 10, v[7].X, 1e-12)
	assert.InDelta(t, -0.7, v[7].Y, 1e-12)
}
