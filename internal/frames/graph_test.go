package frames

import (
	"errors"
	"math"
	"testing"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestGraph_ResolveDirectEdge(t *testing.T) {
	g := NewGraph()
	g.Register(TransformID{Target: "world", Source: "sensor"},
		NewTranslationIsometry(r3.Vec{X: 10}))

	iso, err := g.Resolve("world", "sensor")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	got := iso.Apply(r3.Vec{X: 1})
	if !vecsClose(got, r3.Vec{X: 11}) {
		t.Errorf("got %v want {11 0 0}", got)
	}
}

func TestGraph_ResolveReverseEdge(t *testing.T) {
	g := NewGraph()
	g.Register(TransformID{Target: "world", Source: "sensor"},
		NewTranslationIsometry(r3.Vec{X: 10}))

	iso, err := g.Resolve("sensor", "world")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	got := iso.Apply(r3.Vec{X: 11})
	if !vecsClose(got, r3.Vec{X: 1}) {
		t.Errorf("got %v want {1 0 0}", got)
	}
}

func TestGraph_ResolveMultiHopPath(t *testing.T) {
	// site <- mast <- sensor, each hop a translation.
	g := NewGraph()
	g.Register(TransformID{Target: "site", Source: "mast"},
		NewTranslationIsometry(r3.Vec{Y: 100}))
	g.Register(TransformID{Target: "mast", Source: "sensor"},
		NewTranslationIsometry(r3.Vec{Z: 5}))

	iso, err := g.Resolve("site", "sensor")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	got := iso.Apply(r3.Vec{X: 1})
	want := r3.Vec{X: 1, Y: 100, Z: 5}
	if !vecsClose(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestGraph_ResolveMultiHopWithRotation(t *testing.T) {
	g := NewGraph()
	g.Register(TransformID{Target: "site", Source: "mast"},
		NewRotationIsometry(math.Pi/2, r3.Vec{Z: 1}))
	g.Register(TransformID{Target: "mast", Source: "sensor"},
		NewTranslationIsometry(r3.Vec{X: 2}))

	iso, err := g.Resolve("site", "sensor")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	// Sensor origin sits at mast (2,0,0), rotated into site (0,2,0).
	got := iso.Apply(r3.Vec{})
	if !vecsClose(got, r3.Vec{Y: 2}) {
		t.Errorf("got %v want {0 2 0}", got)
	}
}

func TestGraph_ResolveSameFrameIsIdentity(t *testing.T) {
	g := NewGraph()
	g.Register(TransformID{Target: "world", Source: "sensor"}, Identity())

	iso, err := g.Resolve("sensor", "sensor")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	p := r3.Vec{X: 4, Y: 5, Z: 6}
	if got := iso.Apply(p); !vecsClose(got, p) {
		t.Errorf("identity expected, got %v", got)
	}
}

func TestGraph_UnknownFrame(t *testing.T) {
	g := NewGraph()
	g.Register(TransformID{Target: "world", Source: "sensor"}, Identity())

	_, err := g.Resolve("world", "nonexistent")
	if !errors.Is(err, ErrUnknownFrame) {
		t.Errorf("want ErrUnknownFrame, got %v", err)
	}
}

func TestGraph_NoPathBetweenDisconnectedFrames(t *testing.T) {
	g := NewGraph()
	g.Register(TransformID{Target: "a", Source: "b"}, Identity())
	g.Register(TransformID{Target: "c", Source: "d"}, Identity())

	_, err := g.Resolve("a", "d")
	if !errors.Is(err, ErrNoPath) {
		t.Errorf("want ErrNoPath, got %v", err)
	}
}

func TestGraph_ResolveAtPicksCoveringWindow(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := NewGraph()
	id := TransformID{Target: "world", Source: "rover"}
	g.RegisterTimed(id, t0, t0.Add(time.Minute), NewTranslationIsometry(r3.Vec{X: 1}))
	g.RegisterTimed(id, t0.Add(time.Minute), t0.Add(2*time.Minute), NewTranslationIsometry(r3.Vec{X: 2}))

	iso, err := g.ResolveAt("world", "rover", t0.Add(90*time.Second))
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got := iso.Apply(r3.Vec{}); !vecsClose(got, r3.Vec{X: 2}) {
		t.Errorf("got %v want {2 0 0}", got)
	}
}

func TestGraph_ResolveAtOutsideValidity(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := NewGraph()
	id := TransformID{Target: "world", Source: "rover"}
	g.RegisterTimed(id, t0, t0.Add(time.Minute), Identity())

	_, err := g.ResolveAt("world", "rover", t0.Add(time.Hour))
	if !errors.Is(err, ErrNoTransformAtTime) {
		t.Errorf("want ErrNoTransformAtTime, got %v", err)
	}
}

func TestGraph_ResolveUsesLatestTimedSample(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := NewGraph()
	id := TransformID{Target: "world", Source: "rover"}
	g.RegisterTimed(id, t0, t0.Add(time.Minute), NewTranslationIsometry(r3.Vec{X: 1}))
	g.RegisterTimed(id, t0.Add(time.Hour), t0.Add(2*time.Hour), NewTranslationIsometry(r3.Vec{X: 7}))

	iso, err := g.Resolve("world", "rover")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got := iso.Apply(r3.Vec{}); !vecsClose(got, r3.Vec{X: 7}) {
		t.Errorf("got %v want {7 0 0}", got)
	}
}
