package voxel

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Index identifies one voxel cell by its integer index triple.
type Index struct {
	X, Y, Z int64
}

func (i Index) String() string {
	return fmt.Sprintf("(%d,%d,%d)", i.X, i.Y, i.Z)
}

// Add returns the componentwise sum.
func (i Index) Add(o Index) Index {
	return Index{X: i.X + o.X, Y: i.Y + o.Y, Z: i.Z + o.Z}
}

// Neg returns the componentwise negation.
func (i Index) Neg() Index {
	return Index{X: -i.X, Y: -i.Y, Z: -i.Z}
}

// AllLess reports whether i is strictly less than o on every axis.
func (i Index) AllLess(o Index) bool {
	return i.X < o.X && i.Y < o.Y && i.Z < o.Z
}

// Within reports whether i lies inside the inclusive axis-aligned box
// [lo, hi] on every axis.
func (i Index) Within(lo, hi Index) bool {
	return lo.X <= i.X && i.X <= hi.X &&
		lo.Y <= i.Y && i.Y <= hi.Y &&
		lo.Z <= i.Z && i.Z <= hi.Z
}

// CenterPoint returns the geometric center of the cell at this index for the
// given grid resolution, expressed in the grid's local frame.
func (i Index) CenterPoint(resolution float64) r3.Vec {
	return r3.Vec{
		X: float64(i.X) * resolution,
		Y: float64(i.Y) * resolution,
		Z: float64(i.Z) * resolution,
	}
}
