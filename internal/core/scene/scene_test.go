package scene

import (
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/wingworks/internal/core/geometry"
)

func TestLoadFile_YAML(t *testing.T) {
	s, err := LoadFile("testdata/reference_foil.yaml")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, "reference-foil", s.Name)
	assert.Len(t, s.Polygon, 13)
	assert.Len(t, s.Circles, 4)

	polygon, circles, err := s.Build()
	require.NoError(t, err)
	assert.Len(t, polygon.Axes(), 12)
	require.Len(t, circles, 4)
	assert.Equal(t, geometry.Circle{Center: geometry.Vec(10, 0), Radius: 1}, circles[2])
}

func TestLoadFile_JSONAirfoil(t *testing.T) {
	s, err := LoadFile("testdata/airfoil.json")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Workers)

	polygon, circles, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, 26, polygon.Len())
	assert.Equal(t, 0.125, circles[0].Radius)
	assert.Equal(t, 2.0, circles[1].Radius)

	want, err := geometry.NACA2412(10, 20, 100, 5*math.Pi/180)
	require.NoError(t, err)
	assert.True(t, want.Equal(polygon))

	// The leading edge sits above the chord box corner, so pitching about the
	// corner pushes it right by y*sin(alpha).
	assert.InDelta(t, 10.367760458349283, polygon.Vertices()[0].X, 1e-9)
}

func TestLoadFile_UnknownExtension(t *testing.T) {
	_, err := LoadFile("scene.toml")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{name: "no shape", doc: "circles: []", wantErr: ErrNoShape},
		{
			name:    "both shapes",
			doc:     "polygon: [[0, 0], [0, 1], [1, 0]]\nairfoil: {width: 1}\ncircles: []",
			wantErr: ErrAmbiguousShape,
		},
		{
			name:    "negative workers",
			doc:     "polygon: [[0, 0], [0, 1], [1, 0]]\nworkers: -1",
			wantErr: ErrInvalidScene,
		},
		{
			name:    "flat airfoil",
			doc:     "airfoil: {width: 0}",
			wantErr: ErrInvalidScene,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadYAML_RejectsUnknownFields(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("polygon: [[0, 0], [0, 1], [1, 0]]\nspheres: []"))
	require.Error(t, err)
}

func TestLoadJSON_Malformed(t *testing.T) {
	_, err := LoadJSON(strings.NewReader(`{"polygon": [[0, 0]`))
	require.Error(t, err)
}

func TestBuild_InvalidGeometry(t *testing.T) {
	s := &Scene{Polygon: []Point{{0, 0}, {1, 1}, {2, 2}}}
	_, _, err := s.Build()
	require.ErrorIs(t, err, ErrInvalidScene)
	require.ErrorIs(t, err, geometry.ErrCollinear)

	r := -1.0
	s = &Scene{
		Polygon: []Point{{0, 0}, {0, 1}, {1, 0}},
		Circles: []Circle{{X: 0, Y: 0, Radius: &r}},
	}
	_, _, err = s.Build()
	require.ErrorIs(t, err, geometry.ErrNegativeRadius)
}
