package voxelops

import (
	"github.com/gridsense/voxelkit/internal/table"
	"github.com/gridsense/voxelkit/internal/voxel"
)

// Translate shifts every row's index triple by delta, componentwise. Grid
// metadata and the reference frame handle are carried over unchanged: only
// the discrete index moves, never the resolution or frame registration.
func Translate(g *voxel.Grid, delta voxel.Index) (*voxel.Grid, error) {
	translated := g.Table()
	for _, shift := range []struct {
		name string
		by   int64
	}{
		{voxel.ColX, delta.X},
		{voxel.ColY, delta.Y},
		{voxel.ColZ, delta.Z},
	} {
		vals, err := table.Int64s(translated, shift.name)
		if err != nil {
			return nil, err
		}
		shifted := make([]int64, len(vals))
		for i, v := range vals {
			shifted[i] = v + shift.by
		}
		translated, err = translated.WithColumn(table.NewInt64(shift.name, shifted))
		if err != nil {
			return nil, err
		}
	}
	return voxel.New(translated, g.Info(), g.ReferenceFrames())
}
