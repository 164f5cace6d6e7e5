package voxelops

import (
	"fmt"

	"github.com/gridsense/voxelkit/internal/table"
	"github.com/gridsense/voxelkit/internal/voxel"
)

// OrderError indicates a bounding box whose lower corner is not strictly
// below its upper corner on every axis. It is raised before any filtering
// work is done.
type OrderError struct {
	Lower voxel.Index
	Upper voxel.Index
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("voxelops: lower corner %s must be strictly below upper corner %s on every axis",
		e.Lower, e.Upper)
}

// FilterByCount retains the rows whose count column is at least minimum.
// A minimum of 0 is the identity operation and succeeds even on grids
// without a count column.
func FilterByCount(g *voxel.Grid, minimum int64) (*voxel.Grid, error) {
	if minimum <= 0 {
		return voxel.New(g.Table(), g.Info(), g.ReferenceFrames())
	}
	counts, err := table.Int64s(g.Table(), voxel.ColCount)
	if err != nil {
		return nil, err
	}
	keep := make([]bool, len(counts))
	for i, c := range counts {
		keep[i] = c >= minimum
	}
	filtered, err := g.Table().Filter(keep)
	if err != nil {
		return nil, err
	}
	return voxel.New(filtered, g.Info(), g.ReferenceFrames())
}

// FilterByIndexBounds retains the rows whose index triple lies inside the
// inclusive axis-aligned box [lower, upper]. The lower corner must be
// strictly below the upper corner on every axis — a tie or inversion on any
// single axis fails with an *OrderError.
func FilterByIndexBounds(g *voxel.Grid, lower, upper voxel.Index) (*voxel.Grid, error) {
	if !lower.AllLess(upper) {
		return nil, &OrderError{Lower: lower, Upper: upper}
	}
	indices := g.AllCellIndices()
	keep := make([]bool, len(indices))
	for i, idx := range indices {
		keep[i] = idx.Within(lower, upper)
	}
	filtered, err := g.Table().Filter(keep)
	if err != nil {
		return nil, err
	}
	return voxel.New(filtered, g.Info(), g.ReferenceFrames())
}
