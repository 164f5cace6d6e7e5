package frames

import (
	"errors"
	"fmt"
	"time"
)

// FrameID is a human-readable coordinate frame identifier.
type FrameID string

// TransformID identifies the transform direction required to convert a point
// expressed in Source into Target.
type TransformID struct {
	Target FrameID
	Source FrameID
}

// Inverse returns the id of the opposite transform direction.
func (id TransformID) Inverse() TransformID {
	return TransformID{Target: id.Source, Source: id.Target}
}

func (id TransformID) String() string {
	return fmt.Sprintf("%s<-%s", id.Target, id.Source)
}

// Resolution errors. Callers branch on these with errors.Is.
var (
	// ErrUnknownFrame indicates a frame id that was never registered.
	ErrUnknownFrame = errors.New("frames: unknown frame")
	// ErrNoPath indicates no chain of registered transforms connects the
	// requested frames.
	ErrNoPath = errors.New("frames: no transform path")
	// ErrNoTransformAtTime indicates a connecting transform exists but no
	// registered sample is valid at the requested timestamp.
	ErrNoTransformAtTime = errors.New("frames: no transform valid at timestamp")
)

// Resolver computes rigid transforms between named frames. Resolve answers
// time-independent ("current") queries; ResolveAt requires every transform on
// the path to be valid at the given timestamp.
type Resolver interface {
	Resolve(target, source FrameID) (Isometry, error)
	ResolveAt(target, source FrameID, at time.Time) (Isometry, error)
}

// TransformSample is one registered observation of a transform. Untimed
// samples (zero Start and End) are valid at any time.
type TransformSample struct {
	Start time.Time
	End   time.Time
	Iso   Isometry
}

func (s TransformSample) untimed() bool {
	return s.Start.IsZero() && s.End.IsZero()
}

func (s TransformSample) covers(at time.Time) bool {
	if s.untimed() {
		return true
	}
	return !at.Before(s.Start) && !at.After(s.End)
}

// Graph is a registry of named frames connected by time-varying rigid
// transforms. Build it fully before sharing it: Register calls are not safe
// concurrently with resolution. Once built the graph is immutable from the
// resolver's point of view, so any number of readers may query it.
type Graph struct {
	samples   map[TransformID][]TransformSample
	adjacency map[FrameID][]FrameID
}

// NewGraph returns an empty frame graph.
func NewGraph() *Graph {
	return &Graph{
		samples:   make(map[TransformID][]TransformSample),
		adjacency: make(map[FrameID][]FrameID),
	}
}

// Register adds an untimed transform sample mapping id.Source points into
// id.Target. Both frames become known to the graph.
func (g *Graph) Register(id TransformID, iso Isometry) {
	g.add(id, TransformSample{Iso: iso})
}

// RegisterTimed adds a transform sample valid on the inclusive interval
// [start, end].
func (g *Graph) RegisterTimed(id TransformID, start, end time.Time, iso Isometry) {
	g.add(id, TransformSample{Start: start, End: end, Iso: iso})
}

func (g *Graph) add(id TransformID, s TransformSample) {
	if _, ok := g.samples[id]; !ok && !g.connected(id.Source, id.Target) {
		g.adjacency[id.Source] = append(g.adjacency[id.Source], id.Target)
		g.adjacency[id.Target] = append(g.adjacency[id.Target], id.Source)
	}
	g.samples[id] = append(g.samples[id], s)
	if _, ok := g.adjacency[id.Source]; !ok {
		g.adjacency[id.Source] = nil
	}
	if _, ok := g.adjacency[id.Target]; !ok {
		g.adjacency[id.Target] = nil
	}
}

func (g *Graph) connected(a, b FrameID) bool {
	for _, n := range g.adjacency[a] {
		if n == b {
			return true
		}
	}
	return false
}

// HasFrame reports whether the frame id was registered on any transform.
func (g *Graph) HasFrame(id FrameID) bool {
	_, ok := g.adjacency[id]
	return ok
}

// Frames returns all registered frame ids in unspecified order.
func (g *Graph) Frames() []FrameID {
	out := make([]FrameID, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	return out
}

// Resolve composes the transform mapping source-frame points into the target
// frame, using each edge's most recent sample. It fails with ErrUnknownFrame
// or ErrNoPath.
func (g *Graph) Resolve(target, source FrameID) (Isometry, error) {
	return g.resolve(target, source, nil)
}

// ResolveAt composes the transform mapping source-frame points into the
// target frame, valid at the given timestamp. Every edge on the path must
// have a sample covering the timestamp, otherwise it fails with
// ErrNoTransformAtTime.
func (g *Graph) ResolveAt(target, source FrameID, at time.Time) (Isometry, error) {
	return g.resolve(target, source, &at)
}

func (g *Graph) resolve(target, source FrameID, at *time.Time) (Isometry, error) {
	if !g.HasFrame(source) {
		return Isometry{}, fmt.Errorf("%w: %q", ErrUnknownFrame, source)
	}
	if !g.HasFrame(target) {
		return Isometry{}, fmt.Errorf("%w: %q", ErrUnknownFrame, target)
	}
	if source == target {
		return Identity(), nil
	}

	path, ok := g.findPath(source, target)
	if !ok {
		return Isometry{}, fmt.Errorf("%w: %s", ErrNoPath, TransformID{Target: target, Source: source})
	}

	// Compose hop isometries along the path. Walking source -> target, the
	// accumulated isometry maps source-frame points into the current frame.
	iso := Identity()
	for i := 0; i+1 < len(path); i++ {
		hop, err := g.hopIsometry(path[i], path[i+1], at)
		if err != nil {
			return Isometry{}, err
		}
		iso = hop.Mul(iso)
	}
	return iso, nil
}

// hopIsometry returns the isometry mapping points in frame `from` into frame
// `to`, using the registered direction or the inverse of the opposite one.
func (g *Graph) hopIsometry(from, to FrameID, at *time.Time) (Isometry, error) {
	forward := TransformID{Target: to, Source: from}
	if samples, ok := g.samples[forward]; ok {
		s, err := pickSample(samples, at)
		if err != nil {
			return Isometry{}, fmt.Errorf("%s: %w", forward, err)
		}
		return s.Iso, nil
	}
	reverse := forward.Inverse()
	samples, ok := g.samples[reverse]
	if !ok {
		return Isometry{}, fmt.Errorf("%w: %s", ErrNoPath, forward)
	}
	s, err := pickSample(samples, at)
	if err != nil {
		return Isometry{}, fmt.Errorf("%s: %w", reverse, err)
	}
	return s.Iso.Inverse(), nil
}

// pickSample selects the sample to use for one edge. Timed queries require a
// covering validity window. Untimed queries prefer an untimed sample and fall
// back to the most recent timed one.
func pickSample(samples []TransformSample, at *time.Time) (TransformSample, error) {
	if at != nil {
		for i := len(samples) - 1; i >= 0; i-- {
			if samples[i].covers(*at) {
				return samples[i], nil
			}
		}
		return TransformSample{}, ErrNoTransformAtTime
	}
	var latest *TransformSample
	for i := range samples {
		s := &samples[i]
		if s.untimed() {
			return *s, nil
		}
		if latest == nil || s.Start.After(latest.Start) {
			latest = s
		}
	}
	if latest == nil {
		return TransformSample{}, ErrNoTransformAtTime
	}
	return *latest, nil
}

// findPath runs a breadth-first search over the undirected frame adjacency
// and returns the frame sequence from `from` to `to` inclusive.
func (g *Graph) findPath(from, to FrameID) ([]FrameID, bool) {
	prev := map[FrameID]FrameID{from: from}
	queue := []FrameID{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			var path []FrameID
			for f := to; ; f = prev[f] {
				path = append([]FrameID{f}, path...)
				if f == from {
					return path, true
				}
			}
		}
		for _, next := range g.adjacency[cur] {
			if _, seen := prev[next]; seen {
				continue
			}
			prev[next] = cur
			queue = append(queue, next)
		}
	}
	return nil, false
}
