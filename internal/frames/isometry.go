package frames

import (
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Isometry is a rigid transform mapping points from a source frame into a
// target frame: rotation followed by translation, no scaling.
//
// The zero value is NOT a valid isometry (its rotation quaternion is zero);
// use Identity or NewIsometry.
type Isometry struct {
	R r3.Rotation
	T r3.Vec
}

// Identity returns the isometry that maps every point to itself.
func Identity() Isometry {
	return Isometry{R: r3.Rotation(quat.Number{Real: 1})}
}

// NewIsometry builds an isometry from a rotation and a translation.
func NewIsometry(rot r3.Rotation, trans r3.Vec) Isometry {
	return Isometry{R: rot, T: trans}
}

// NewRotationIsometry builds a pure rotation of alpha radians about axis.
func NewRotationIsometry(alpha float64, axis r3.Vec) Isometry {
	return Isometry{R: r3.NewRotation(alpha, axis)}
}

// NewTranslationIsometry builds a pure translation.
func NewTranslationIsometry(trans r3.Vec) Isometry {
	return Isometry{R: r3.Rotation(quat.Number{Real: 1}), T: trans}
}

// Apply maps a point expressed in the source frame into the target frame.
func (iso Isometry) Apply(p r3.Vec) r3.Vec {
	return r3.Add(iso.R.Rotate(p), iso.T)
}

// Mul composes two isometries: (a.Mul(b)).Apply(p) == a.Apply(b.Apply(p)).
func (iso Isometry) Mul(other Isometry) Isometry {
	return Isometry{
		R: r3.Rotation(quat.Mul(quat.Number(iso.R), quat.Number(other.R))),
		T: r3.Add(iso.R.Rotate(other.T), iso.T),
	}
}

// Inverse returns the isometry mapping target-frame points back into the
// source frame. The rotation must be a unit quaternion, which holds for
// every isometry built through this package.
func (iso Isometry) Inverse() Isometry {
	rInv := r3.Rotation(quat.Conj(quat.Number(iso.R)))
	return Isometry{
		R: rInv,
		T: r3.Scale(-1, rInv.Rotate(iso.T)),
	}
}
