package frames

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func vecsClose(a, b r3.Vec) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}

func TestIdentity_MapsPointToItself(t *testing.T) {
	p := r3.Vec{X: 1.5, Y: -2, Z: 3.25}
	got := Identity().Apply(p)
	if !vecsClose(got, p) {
		t.Errorf("identity moved point: got %v want %v", got, p)
	}
}

func TestTranslationIsometry_Apply(t *testing.T) {
	iso := NewTranslationIsometry(r3.Vec{X: 1, Y: 2, Z: 3})
	got := iso.Apply(r3.Vec{X: 10, Y: 20, Z: 30})
	want := r3.Vec{X: 11, Y: 22, Z: 33}
	if !vecsClose(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestRotationIsometry_QuarterTurnAboutZ(t *testing.T) {
	iso := NewRotationIsometry(math.Pi/2, r3.Vec{Z: 1})
	got := iso.Apply(r3.Vec{X: 1})
	want := r3.Vec{Y: 1}
	if !vecsClose(got, want) {
		t.Errorf("got %v want %v", got, want)
	}
}

func TestIsometry_MulComposesRightToLeft(t *testing.T) {
	rot := NewRotationIsometry(math.Pi/2, r3.Vec{Z: 1})
	shift := NewTranslationIsometry(r3.Vec{X: 5})

	p := r3.Vec{X: 1}
	composed := shift.Mul(rot).Apply(p)
	sequential := shift.Apply(rot.Apply(p))
	if !vecsClose(composed, sequential) {
		t.Errorf("composed %v != sequential %v", composed, sequential)
	}
	want := r3.Vec{X: 5, Y: 1}
	if !vecsClose(composed, want) {
		t.Errorf("got %v want %v", composed, want)
	}
}

func TestIsometry_InverseRoundTrip(t *testing.T) {
	iso := NewRotationIsometry(0.7, r3.Vec{X: 1, Y: 1, Z: 0.5}).
		Mul(NewTranslationIsometry(r3.Vec{X: -2, Y: 4, Z: 9}))

	p := r3.Vec{X: 3, Y: -1, Z: 2}
	got := iso.Inverse().Apply(iso.Apply(p))
	if !vecsClose(got, p) {
		t.Errorf("round trip moved point: got %v want %v", got, p)
	}
}
