package collision

import (
	"context"
	"math"
	"runtime"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/zeusync/wingworks/internal/core/geometry"
	"github.com/zeusync/wingworks/internal/core/observability/log"
	"github.com/zeusync/wingworks/pkg/concurrent"
)

// axis is a cached polygon edge normal.
type axis struct {
	edge   int
	normal geometry.Vector2
}

// shape pairs a polygon with the axes derived from it. It is replaced as a
// whole so readers never see axes from a different polygon.
type shape struct {
	polygon *geometry.Polygon
	axes    []axis
}

func newShape(p *geometry.Polygon) *shape {
	s := &shape{polygon: p}
	for i, n := range p.SegmentNormals() {
		s.axes = append(s.axes, axis{edge: i, normal: n})
	}
	return s
}

// Resolver finds minimum translation vectors between one convex polygon and
// any number of circles using the Separating Axis Theorem.
//
// Queries are safe for concurrent use. SetPolygon swaps the polygon and its
// axis cache atomically.
type Resolver struct {
	id      uuid.UUID
	state   atomic.Pointer[shape]
	circles []geometry.Circle
	workers int
	logger  log.Log

	queries  atomic.Uint64
	hits     atomic.Uint64
	rebuilds atomic.Uint64
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger log.Log) Option {
	return func(r *Resolver) { r.logger = logger }
}

// WithWorkers sets the goroutine limit for ResolveAllParallel.
func WithWorkers(workers int) Option {
	return func(r *Resolver) { r.workers = workers }
}

// WithCircles sets the circles resolved by Resolutions.
func WithCircles(circles ...geometry.Circle) Option {
	return func(r *Resolver) { r.circles = append([]geometry.Circle(nil), circles...) }
}

// Stats holds resolver counters.
type Stats struct {
	Queries      uint64
	Hits         uint64
	AxisRebuilds uint64
}

// NewResolver creates a resolver for polygon and caches its edge normals.
func NewResolver(polygon *geometry.Polygon, opts ...Option) (*Resolver, error) {
	if polygon == nil {
		return nil, ErrNilPolygon
	}

	r := &Resolver{
		id:      uuid.New(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers <= 0 {
		return nil, ErrInvalidWorkers
	}
	if r.logger == nil {
		r.logger = log.NewNop()
	}
	r.logger = r.logger.With(
		log.String("component", "sat_resolver"),
		log.String("resolver_id", r.id.String()))

	s := newShape(polygon)
	r.state.Store(s)
	r.rebuilds.Add(1)

	r.logger.Debug("Resolver created",
		log.Int("vertices", polygon.Len()),
		log.Int("axes", len(s.axes)),
		log.Int("circles", len(r.circles)),
		log.Int("workers", r.workers))

	return r, nil
}

// ID identifies the resolver in logs.
func (r *Resolver) ID() uuid.UUID { return r.id }

// Polygon returns the polygon currently resolved against.
func (r *Resolver) Polygon() *geometry.Polygon { return r.state.Load().polygon }

// Axes returns a copy of the cached edge normals in evaluation order.
func (r *Resolver) Axes() []geometry.Vector2 {
	s := r.state.Load()
	out := make([]geometry.Vector2, len(s.axes))
	for i, a := range s.axes {
		out[i] = a.normal
	}
	return out
}

// SetPolygon replaces the polygon. The axis cache is rebuilt unless polygon
// has exactly the same vertices as the current one. It reports whether a
// rebuild happened.
func (r *Resolver) SetPolygon(polygon *geometry.Polygon) (bool, error) {
	if polygon == nil {
		return false, ErrNilPolygon
	}
	if polygon.Equal(r.state.Load().polygon) {
		return false, nil
	}

	s := newShape(polygon)
	r.state.Store(s)
	r.rebuilds.Add(1)

	r.logger.Debug("Axis cache rebuilt",
		log.Uint64("fingerprint", polygon.Fingerprint()),
		log.Int("axes", len(s.axes)))
	return true, nil
}

// Resolve tests one circle against the polygon. A hit's MTV points away from
// the polygon: adding it to the circle's center separates the two shapes.
// Circles should come from geometry.NewCircle; a NaN coordinate or radius
// resolves to a miss.
func (r *Resolver) Resolve(circle geometry.Circle) Resolution {
	res := r.state.Load().resolve(circle)
	r.queries.Add(1)
	if res.Hit {
		r.hits.Add(1)
	}
	return res
}

// ResolveAll resolves each circle independently, preserving input order.
func (r *Resolver) ResolveAll(circles []geometry.Circle) []Resolution {
	s := r.state.Load()
	out := make([]Resolution, len(circles))
	hits := 0
	for i, c := range circles {
		out[i] = s.resolve(c)
		if out[i].Hit {
			hits++
		}
	}
	r.queries.Add(uint64(len(circles)))
	r.hits.Add(uint64(hits))

	r.logger.Debug("Resolved circles",
		log.Int("circles", len(circles)),
		log.Int("hits", hits))
	return out
}

// Resolutions resolves the circles supplied with WithCircles.
func (r *Resolver) Resolutions() []Resolution {
	return r.ResolveAll(r.circles)
}

// ResolveAllParallel is ResolveAll spread over the configured number of
// workers. Output order matches input order.
func (r *Resolver) ResolveAllParallel(ctx context.Context, circles []geometry.Circle) ([]Resolution, error) {
	s := r.state.Load()
	out, err := concurrent.ParallelMap(ctx, circles, r.workers, s.resolve)
	if err != nil {
		r.logger.Warn("Parallel resolution aborted", log.Error(err))
		return nil, err
	}

	hits := 0
	for _, res := range out {
		if res.Hit {
			hits++
		}
	}
	r.queries.Add(uint64(len(circles)))
	r.hits.Add(uint64(hits))

	r.logger.Debug("Resolved circles in parallel",
		log.Int("circles", len(circles)),
		log.Int("hits", hits),
		log.Int("workers", r.workers))
	return out, nil
}

// Stats returns a snapshot of the resolver counters.
func (r *Resolver) Stats() Stats {
	return Stats{
		Queries:      r.queries.Load(),
		Hits:         r.hits.Load(),
		AxisRebuilds: r.rebuilds.Load(),
	}
}

func (s *shape) resolve(circle geometry.Circle) Resolution {
	best := axisOverlap{depth: math.Inf(1)}
	minEdge := VertexAxis

	for _, a := range s.axes {
		o, ok := s.overlap(circle, a.normal)
		if !ok {
			return miss()
		}
		if o.depth < best.depth {
			best, minEdge = o, a.edge
		}
	}

	// The deepest penetration may lie along no edge normal when the circle
	// sits off a corner, so the nearest vertex contributes one more axis.
	nearest := s.polygon.NearestVertex(circle.Center)
	vertexAxis := nearest.Sub(circle.Center).Normal().Unit()
	o, ok := s.overlap(circle, vertexAxis)
	if !ok {
		return miss()
	}
	if o.depth < best.depth {
		best, minEdge = o, VertexAxis
	}

	if best.depth <= 0 {
		// Touching only.
		return miss()
	}
	return Resolution{MTV: best.mtv(), Hit: true, EdgeIndex: minEdge}
}

// axisOverlap is the penetration of a circle into the polygon along one axis.
type axisOverlap struct {
	axis  geometry.Vector2
	depth float64
	// flip is set when the circle leaves the overlap by moving against axis.
	flip bool
}

func (o axisOverlap) mtv() geometry.Vector2 {
	if o.flip {
		return o.axis.Scale(-o.depth)
	}
	return o.axis.Scale(o.depth)
}

// overlap projects both shapes on unitAxis. ok is false when the
// projections are disjoint or not comparable.
func (s *shape) overlap(circle geometry.Circle, unitAxis geometry.Vector2) (axisOverlap, bool) {
	polyMin, polyMax := s.polygon.ProjectionExtrema(unitAxis)
	circMin, circMax := circle.ProjectionExtrema(unitAxis)

	forward := polyMax - circMin
	backward := circMax - polyMin
	o := axisOverlap{axis: unitAxis, depth: forward}
	if backward < forward {
		o.depth, o.flip = backward, true
	}
	if o.depth < 0 || math.IsNaN(o.depth) {
		return axisOverlap{}, false
	}
	return o, true
}

// OverlapOnAxis returns how far polygon and circle overlap when projected on
// unitAxis, or false when the projections are disjoint.
func OverlapOnAxis(polygon *geometry.Polygon, circle geometry.Circle, unitAxis geometry.Vector2) (float64, bool) {
	o, ok := (&shape{polygon: polygon}).overlap(circle, unitAxis)
	return o.depth, ok
}
