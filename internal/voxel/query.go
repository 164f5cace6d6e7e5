package voxel

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/gridsense/voxelkit/internal/frames"
)

// MinIndex returns the componentwise minimum of the index columns across all
// rows. Fails with ErrEmptyGrid on a grid with zero rows.
func (g *Grid) MinIndex() (Index, error) {
	if g.NumRows() == 0 {
		return Index{}, ErrEmptyGrid
	}
	xs, ys, zs := g.indexColumns()
	min := Index{X: xs[0], Y: ys[0], Z: zs[0]}
	for i := 1; i < len(xs); i++ {
		if xs[i] < min.X {
			min.X = xs[i]
		}
		if ys[i] < min.Y {
			min.Y = ys[i]
		}
		if zs[i] < min.Z {
			min.Z = zs[i]
		}
	}
	return min, nil
}

// MaxIndex returns the componentwise maximum of the index columns across all
// rows. Fails with ErrEmptyGrid on a grid with zero rows.
func (g *Grid) MaxIndex() (Index, error) {
	if g.NumRows() == 0 {
		return Index{}, ErrEmptyGrid
	}
	xs, ys, zs := g.indexColumns()
	max := Index{X: xs[0], Y: ys[0], Z: zs[0]}
	for i := 1; i < len(xs); i++ {
		if xs[i] > max.X {
			max.X = xs[i]
		}
		if ys[i] > max.Y {
			max.Y = ys[i]
		}
		if zs[i] > max.Z {
			max.Z = zs[i]
		}
	}
	return max, nil
}

// MinLocalCenterPoint returns the local-frame center point of the cell at the
// componentwise minimum index.
func (g *Grid) MinLocalCenterPoint() (r3.Vec, error) {
	min, err := g.MinIndex()
	if err != nil {
		return r3.Vec{}, err
	}
	return min.CenterPoint(g.info.Resolution), nil
}

// MaxLocalCenterPoint returns the local-frame center point of the cell at the
// componentwise maximum index.
func (g *Grid) MaxLocalCenterPoint() (r3.Vec, error) {
	max, err := g.MaxIndex()
	if err != nil {
		return r3.Vec{}, err
	}
	return max.CenterPoint(g.info.Resolution), nil
}

// MinCenterPoint projects the minimum-index center point into the target
// frame using the current (time-independent) frame registration.
func (g *Grid) MinCenterPoint(target frames.FrameID) (r3.Vec, error) {
	p, err := g.MinLocalCenterPoint()
	if err != nil {
		return r3.Vec{}, err
	}
	iso, err := g.refFrames.Resolve(target, g.info.FrameID)
	if err != nil {
		return r3.Vec{}, err
	}
	return iso.Apply(p), nil
}

// MaxCenterPoint projects the maximum-index center point into the target
// frame using the current (time-independent) frame registration.
func (g *Grid) MaxCenterPoint(target frames.FrameID) (r3.Vec, error) {
	p, err := g.MaxLocalCenterPoint()
	if err != nil {
		return r3.Vec{}, err
	}
	iso, err := g.refFrames.Resolve(target, g.info.FrameID)
	if err != nil {
		return r3.Vec{}, err
	}
	return iso.Apply(p), nil
}

// CellIndex returns one row's index triple.
func (g *Grid) CellIndex(row int) Index {
	xs, ys, zs := g.indexColumns()
	return Index{X: xs[row], Y: ys[row], Z: zs[row]}
}

// LocalCenterPoint returns the center of one row's voxel cell in the local
// frame: index times resolution, componentwise.
func (g *Grid) LocalCenterPoint(row int) r3.Vec {
	return g.CellIndex(row).CenterPoint(g.info.Resolution)
}

// CenterPoint projects one row's cell center into the target frame using the
// frame registration valid at the given timestamp.
func (g *Grid) CenterPoint(row int, target frames.FrameID, at time.Time) (r3.Vec, error) {
	iso, err := g.refFrames.ResolveAt(target, g.info.FrameID, at)
	if err != nil {
		return r3.Vec{}, err
	}
	return iso.Apply(g.LocalCenterPoint(row)), nil
}

// AllCellIndices returns every row's index triple in row order.
func (g *Grid) AllCellIndices() []Index {
	xs, ys, zs := g.indexColumns()
	out := make([]Index, g.NumRows())
	parallelFor(len(out), func(i int) {
		out[i] = Index{X: xs[i], Y: ys[i], Z: zs[i]}
	})
	return out
}

// AllLocalCenterPoints returns every row's cell center in the local frame, in
// row order.
func (g *Grid) AllLocalCenterPoints() []r3.Vec {
	xs, ys, zs := g.indexColumns()
	res := g.info.Resolution
	out := make([]r3.Vec, g.NumRows())
	parallelFor(len(out), func(i int) {
		out[i] = Index{X: xs[i], Y: ys[i], Z: zs[i]}.CenterPoint(res)
	})
	return out
}

// AllCenterPoints applies CenterPoint to every row: each cell center is
// projected into the target frame at the given timestamp, in row order. The
// whole batch fails on the first row whose resolution fails; no partial
// results are returned.
func (g *Grid) AllCenterPoints(target frames.FrameID, at time.Time) ([]r3.Vec, error) {
	out := make([]r3.Vec, g.NumRows())
	eg, ctx := errgroup.WithContext(context.Background())
	for _, b := range chunkBounds(len(out)) {
		lo, hi := b[0], b[1]
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				p, err := g.CenterPoint(i, target, at)
				if err != nil {
					return err
				}
				out[i] = p
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
