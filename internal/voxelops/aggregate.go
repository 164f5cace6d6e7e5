package voxelops

import (
	"github.com/gridsense/voxelkit/internal/voxel"
)

// AggregateByIndex groups rows by their (x,y,z) index triple, producing one
// row per distinct voxel cell. Every other column's values are collected into
// a list, and a count column records how many rows merged into each group.
//
// The count is the merged-row count of this pass, never a sum of a
// pre-existing count column; an existing count column is dropped and
// replaced. Group order follows the first appearance of each index triple.
func AggregateByIndex(g *voxel.Grid) (*voxel.Grid, error) {
	aggregated, err := g.Table().GroupByCollect(voxel.IndexColumns(), voxel.ColCount)
	if err != nil {
		return nil, err
	}
	return voxel.New(aggregated, g.Info(), g.ReferenceFrames())
}

// Explode unpacks every list-valued column so that each list element gets its
// own row, replicating the scalar columns of the source row. It is the
// inverse-shaped companion of AggregateByIndex, used to re-expand grouped
// attributes.
func Explode(g *voxel.Grid) (*voxel.Grid, error) {
	exploded, err := g.Table().Explode()
	if err != nil {
		return nil, err
	}
	return voxel.New(exploded, g.Info(), g.ReferenceFrames())
}
