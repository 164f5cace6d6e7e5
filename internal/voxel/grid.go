package voxel

import (
	"fmt"

	"github.com/gridsense/voxelkit/internal/frames"
	"github.com/gridsense/voxelkit/internal/table"
)

// GridInfo is the grid metadata: the edge length of one voxel cell and the
// coordinate frame its indices are expressed in.
type GridInfo struct {
	// Resolution is the voxel edge length in the local frame's length unit.
	// Must be positive.
	Resolution float64
	// FrameID names the grid's local coordinate frame.
	FrameID frames.FrameID
}

// Grid is the voxel grid aggregate: a row-indexed table of voxel cells, the
// grid metadata, and a handle to the reference frame graph. It is constructed
// only through New, which validates the data integrity invariants.
type Grid struct {
	data      *table.Table
	info      GridInfo
	refFrames frames.Resolver
}

// New validates the voxel data against the grid contract and builds a Grid.
// The invariants, checked on every construction:
//
//   - columns x, y, z exist and hold scalar int64 values;
//   - a count column, when present, holds scalar int64 values;
//   - info.Resolution is positive;
//   - info.FrameID is non-empty;
//   - refFrames is non-nil.
//
// Violations fail with an *IntegrityError.
func New(data *table.Table, info GridInfo, refFrames frames.Resolver) (*Grid, error) {
	if data == nil {
		return nil, integrityErr("voxel data is nil", nil)
	}
	for _, name := range IndexColumns() {
		if _, err := table.Int64s(data, name); err != nil {
			return nil, integrityErr(fmt.Sprintf("index column %q", name), err)
		}
	}
	if data.HasColumn(ColCount) {
		if _, err := table.Int64s(data, ColCount); err != nil {
			return nil, integrityErr(fmt.Sprintf("column %q", ColCount), err)
		}
	}
	if !(info.Resolution > 0) {
		return nil, integrityErr(fmt.Sprintf("resolution %v is not positive", info.Resolution), nil)
	}
	if info.FrameID == "" {
		return nil, integrityErr("local frame id is empty", nil)
	}
	if refFrames == nil {
		return nil, integrityErr("reference frames handle is nil", nil)
	}
	return &Grid{data: data, info: info, refFrames: refFrames}, nil
}

// Table returns the voxel table. Read-only: callers must not modify it.
func (g *Grid) Table() *table.Table { return g.data }

// Info returns the grid metadata.
func (g *Grid) Info() GridInfo { return g.info }

// ReferenceFrames returns the grid's frame graph handle.
func (g *Grid) ReferenceFrames() frames.Resolver { return g.refFrames }

// NumRows returns the number of voxel rows.
func (g *Grid) NumRows() int { return g.data.NumRows() }

// LocalFrameID returns the frame the grid's voxel indices are expressed in.
func (g *Grid) LocalFrameID() frames.FrameID { return g.info.FrameID }

// ReplaceReferenceFrames swaps the frame graph handle for a new one, leaving
// table and info untouched. This is the only in-place mutation a Grid
// permits; the caller must ensure no query runs concurrently with the swap.
func (g *Grid) ReplaceReferenceFrames(refFrames frames.Resolver) error {
	if refFrames == nil {
		return integrityErr("reference frames handle is nil", nil)
	}
	g.refFrames = refFrames
	return nil
}

// indexColumns returns the three index column slices. Construction
// guarantees they exist with the right type.
func (g *Grid) indexColumns() (xs, ys, zs []int64) {
	xs, err := table.Int64s(g.data, ColX)
	if err != nil {
		panic(err) // unreachable: validated by New
	}
	ys, err = table.Int64s(g.data, ColY)
	if err != nil {
		panic(err)
	}
	zs, err = table.Int64s(g.data, ColZ)
	if err != nil {
		panic(err)
	}
	return xs, ys, zs
}

// Counts returns the count column values, or false when the grid has no
// count column.
func (g *Grid) Counts() ([]int64, bool) {
	if !g.data.HasColumn(ColCount) {
		return nil, false
	}
	counts, err := table.Int64s(g.data, ColCount)
	if err != nil {
		return nil, false
	}
	return counts, true
}

// Equal reports whether two grids hold identical tables and metadata. Frame
// graph handles are compared by identity, not structure.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	return g.info == other.info && g.data.Equal(other.data)
}
