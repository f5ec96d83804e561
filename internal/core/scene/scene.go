// Package scene loads polygon and circle geometry from YAML or JSON files.
package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/wingworks/internal/core/geometry"
)

// Point is an [x, y] pair.
type Point [2]float64

// Airfoil describes a NACA 2412 section placed in the scene.
type Airfoil struct {
	Left     float64 `json:"left" yaml:"left"`
	Bottom   float64 `json:"bottom" yaml:"bottom"`
	Width    float64 `json:"width" yaml:"width"`
	AlphaDeg float64 `json:"alpha_deg,omitempty" yaml:"alpha_deg,omitempty"`
}

// Circle describes one circle. A nil Radius falls back to Scene.DefaultRadius.
type Circle struct {
	X      float64  `json:"x" yaml:"x"`
	Y      float64  `json:"y" yaml:"y"`
	Radius *float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
}

// Scene is one resolution query: a polygon (given directly or as an airfoil)
// and the circles to test against it.
type Scene struct {
	// ID is assigned on load and tags log lines for this scene.
	ID            uuid.UUID `json:"-" yaml:"-"`
	Name          string    `json:"name,omitempty" yaml:"name,omitempty"`
	Polygon       []Point   `json:"polygon,omitempty" yaml:"polygon,omitempty"`
	Airfoil       *Airfoil  `json:"airfoil,omitempty" yaml:"airfoil,omitempty"`
	Circles       []Circle  `json:"circles" yaml:"circles"`
	DefaultRadius float64   `json:"default_radius,omitempty" yaml:"default_radius,omitempty"`
	Workers       int       `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// LoadJSON loads a scene from a JSON reader.
func LoadJSON(r io.Reader) (*Scene, error) {
	var s Scene
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode json scene: %w", err)
	}
	return s.loaded()
}

// LoadYAML loads a scene from a YAML reader.
func LoadYAML(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode yaml scene: %w", err)
	}
	return s.loaded()
}

// LoadFile picks the decoder from the file extension.
func LoadFile(path string) (*Scene, error) {
	var load func(io.Reader) (*Scene, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		load = LoadYAML
	case ".json":
		load = LoadJSON
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Scene) loaded() (*Scene, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.ID = uuid.New()
	return s, nil
}

// Validate checks the scene without building geometry.
func (s *Scene) Validate() error {
	switch {
	case len(s.Polygon) == 0 && s.Airfoil == nil:
		return ErrNoShape
	case len(s.Polygon) > 0 && s.Airfoil != nil:
		return ErrAmbiguousShape
	}
	if s.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidScene)
	}
	if s.DefaultRadius < 0 || math.IsNaN(s.DefaultRadius) {
		return fmt.Errorf("%w: default_radius must not be negative", ErrInvalidScene)
	}
	if s.Airfoil != nil && s.Airfoil.Width <= 0 {
		return fmt.Errorf("%w: airfoil width must be positive", ErrInvalidScene)
	}
	return nil
}

// Build turns the scene into geometry.
func (s *Scene) Build() (*geometry.Polygon, []geometry.Circle, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}

	polygon, err := s.buildPolygon()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}

	circles := make([]geometry.Circle, len(s.Circles))
	for i, c := range s.Circles {
		radius := s.DefaultRadius
		if c.Radius != nil {
			radius = *c.Radius
		}
		circles[i], err = geometry.NewCircle(geometry.Vec(c.X, c.Y), radius)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: circle %d: %w", ErrInvalidScene, i, err)
		}
	}
	return polygon, circles, nil
}

func (s *Scene) buildPolygon() (*geometry.Polygon, error) {
	if s.Airfoil != nil {
		a := s.Airfoil
		return geometry.NACA2412(a.Left, a.Bottom, a.Width, a.AlphaDeg*math.Pi/180)
	}

	vertices := make([]geometry.Vector2, len(s.Polygon))
	for i, p := range s.Polygon {
		vertices[i] = geometry.Vec(p[0], p[1])
	}
	return geometry.NewPolygon(vertices...)
}
