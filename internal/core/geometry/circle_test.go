package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCircle(t *testing.T) {
	c, err := NewCircle(Vec(1, 2), 0.5)
	require.NoError(t, err)
	assert.Equal(t, Circle{Center: Vec(1, 2), Radius: 0.5}, c)

	_, err = NewCircle(Vec(1, 2), 0)
	require.NoError(t, err, "zero radius is a point")

	_, err = NewCircle(Vec(1, 2), -1)
	require.ErrorIs(t, err, ErrNegativeRadius)

	_, err = NewCircle(Vec(math.Inf(1), 2), 1)
	require.ErrorIs(t, err, ErrNonFinite)

	_, err = NewCircle(Vec(0, 0), math.NaN())
	require.ErrorIs(t, err, ErrNonFinite)
}

func TestCircle_ProjectionExtrema(t *testing.T) {
	c := Circle{Center: Vec(3, 4), Radius: 1}

	lo, hi := c.ProjectionExtrema(Vec(1, 0))
	assert.Equal(t, 2.0, lo)
	assert.Equal(t, 4.0, hi)

	lo, hi = c.ProjectionExtrema(Vec(0, -1))
	assert.Equal(t, -5.0, lo)
	assert.Equal(t, -3.0, hi)

	lo, hi = c.ProjectionExtrema(Vec(3, 4).Unit())
	assert.InDelta(t, 4.0, lo, 1e-12)
	assert.InDelta(t, 6.0, hi, 1e-12)
}
