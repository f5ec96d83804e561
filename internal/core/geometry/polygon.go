package geometry

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// collinearTolerance is the distance from the reference line under which a
// vertex is considered to lie on it.
const collinearTolerance = 1.0e-9

// BoundingBox is an axis-aligned rectangle.
type BoundingBox struct {
	Min Vector2
	Max Vector2
}

func (b BoundingBox) Width() float64  { return b.Max.X - b.Min.X }
func (b BoundingBox) Height() float64 { return b.Max.Y - b.Min.Y }

// Contains uses half-open bounds: min is inside, max is outside.
func (b BoundingBox) Contains(p Vector2) bool {
	return b.Min.X <= p.X && p.X < b.Max.X && b.Min.Y <= p.Y && p.Y < b.Max.Y
}

// Polygon is an ordered, implicitly closed vertex ring. Edge i runs from
// vertex i to vertex (i+1) mod N. A Polygon never changes after construction.
type Polygon struct {
	vertices    []Vector2
	edges       []Edge
	bbox        BoundingBox
	fingerprint uint64
}

// NewPolygon validates vertices and builds a polygon from a copy of them.
// The vertex list may repeat its first vertex at the end to close the shape.
func NewPolygon(vertices ...Vector2) (*Polygon, error) {
	for i, v := range vertices {
		if !v.isFinite() {
			return nil, fmt.Errorf("vertex %d: %w", i, ErrNonFinite)
		}
	}

	distinct := distinctVertices(vertices)
	if len(distinct) < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewVertices, len(distinct))
	}
	if collinear(distinct) {
		return nil, ErrCollinear
	}

	p := &Polygon{vertices: append([]Vector2(nil), vertices...)}
	p.edges = buildEdges(p.vertices)
	p.bbox = buildBoundingBox(p.vertices)
	p.fingerprint = fingerprint(p.vertices)
	return p, nil
}

// MustPolygon is like NewPolygon but panics on invalid input.
func MustPolygon(vertices ...Vector2) *Polygon {
	p, err := NewPolygon(vertices...)
	if err != nil {
		panic(err)
	}
	return p
}

// Vertices returns a copy of the vertex ring.
func (p *Polygon) Vertices() []Vector2 {
	return append([]Vector2(nil), p.vertices...)
}

// Edges returns a copy of the derived edges, one per vertex.
func (p *Polygon) Edges() []Edge {
	return append([]Edge(nil), p.edges...)
}

func (p *Polygon) Len() int { return len(p.vertices) }

func (p *Polygon) BoundingBox() BoundingBox { return p.bbox }

// Fingerprint hashes the exact vertex coordinates. Two polygons with the same
// fingerprint have the same axes.
func (p *Polygon) Fingerprint() uint64 { return p.fingerprint }

// Contains reports whether point lies inside p using the crossing-number test.
func (p *Polygon) Contains(point Vector2) bool {
	if !p.bbox.Contains(point) {
		return false
	}

	crossings := 0
	for _, e := range p.edges {
		if !e.CrossesUpward(point.Y) && !e.CrossesDownward(point.Y) {
			continue
		}
		if x, ok := e.XIntersect(point); ok && point.X < x {
			crossings++
		}
	}
	return crossings%2 != 0
}

// SegmentNormals yields (edge index, unit edge normal) in vertex order,
// skipping degenerate edges. Every call starts a fresh pass.
func (p *Polygon) SegmentNormals() iter.Seq2[int, Vector2] {
	return func(yield func(int, Vector2) bool) {
		for i, e := range p.edges {
			if e.IsDegenerate() {
				continue
			}
			if !yield(i, e.Delta().Normal().Unit()) {
				return
			}
		}
	}
}

// Axes collects SegmentNormals into a slice.
func (p *Polygon) Axes() []Vector2 {
	axes := make([]Vector2, 0, len(p.edges))
	for _, n := range p.SegmentNormals() {
		axes = append(axes, n)
	}
	return axes
}

// ProjectionExtrema returns the min and max of vertex·axis. axis must be a
// unit vector (or zero).
func (p *Polygon) ProjectionExtrema(axis Vector2) (lo, hi float64) {
	assertUnitAxis(axis)

	lo = p.vertices[0].Dot(axis)
	hi = lo
	for _, v := range p.vertices[1:] {
		d := v.Dot(axis)
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	return lo, hi
}

// NearestVertex returns the vertex closest to point. Ties go to the earlier vertex.
func (p *Polygon) NearestVertex(point Vector2) Vector2 {
	best := p.vertices[0]
	bestDist := best.DistanceSquared(point)
	for _, v := range p.vertices[1:] {
		if d := v.DistanceSquared(point); d < bestDist {
			best, bestDist = v, d
		}
	}
	return best
}

func buildEdges(vertices []Vector2) []Edge {
	n := len(vertices)
	edges := make([]Edge, n)
	for i := range vertices {
		edges[i] = Edge{From: vertices[i], To: vertices[(i+1)%n]}
	}
	return edges
}

func buildBoundingBox(vertices []Vector2) BoundingBox {
	b := BoundingBox{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		b.Min.X = math.Min(b.Min.X, v.X)
		b.Min.Y = math.Min(b.Min.Y, v.Y)
		b.Max.X = math.Max(b.Max.X, v.X)
		b.Max.Y = math.Max(b.Max.Y, v.Y)
	}
	return b
}

// distinctVertices drops vertices that coincide with their predecessor,
// including the wraparound from the last vertex to the first.
func distinctVertices(vertices []Vector2) []Vector2 {
	out := make([]Vector2, 0, len(vertices))
	for _, v := range vertices {
		if len(out) > 0 && (Edge{From: out[len(out)-1], To: v}).IsDegenerate() {
			continue
		}
		out = append(out, v)
	}
	for len(out) > 1 && (Edge{From: out[len(out)-1], To: out[0]}).IsDegenerate() {
		out = out[:len(out)-1]
	}
	return out
}

func collinear(vertices []Vector2) bool {
	origin := vertices[0]
	dir := vertices[1].Sub(origin).Unit()
	for _, v := range vertices[2:] {
		// Distance from v to the line through origin along dir.
		if math.Abs(v.Sub(origin).Dot(dir.Normal())) > collinearTolerance {
			return false
		}
	}
	return true
}

func fingerprint(vertices []Vector2) uint64 {
	d := xxhash.New()
	var buf [16]byte
	for _, v := range vertices {
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(v.X))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(v.Y))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

// Equal reports whether p and other have identical vertex rings.
func (p *Polygon) Equal(other *Polygon) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.fingerprint == other.fingerprint && slices.Equal(p.vertices, other.vertices)
}
