package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/gridsense/voxelkit/internal/voxel"
)

func runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	dataPath := fs.String("data", "", "path to the XYZ dataset")
	infoPath := fs.String("info", "", "path to the grid info JSON document")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := loadGrid(*dataPath, *infoPath)
	if err != nil {
		return err
	}

	info := g.Info()
	fmt.Printf("frame:      %s\n", info.FrameID)
	fmt.Printf("resolution: %g\n", info.Resolution)
	fmt.Printf("rows:       %d\n", g.NumRows())

	min, err := g.MinIndex()
	if errors.Is(err, voxel.ErrEmptyGrid) {
		fmt.Println("bounds:     (empty grid)")
		return nil
	}
	if err != nil {
		return err
	}
	max, err := g.MaxIndex()
	if err != nil {
		return err
	}
	fmt.Printf("min index:  %s\n", min)
	fmt.Printf("max index:  %s\n", max)

	lo, err := g.MinLocalCenterPoint()
	if err != nil {
		return err
	}
	hi, err := g.MaxLocalCenterPoint()
	if err != nil {
		return err
	}
	fmt.Printf("min center: (%g, %g, %g)\n", lo.X, lo.Y, lo.Z)
	fmt.Printf("max center: (%g, %g, %g)\n", hi.X, hi.Y, hi.Z)

	if counts, ok := g.Counts(); ok {
		var total, maxCount int64
		for _, c := range counts {
			total += c
			if c > maxCount {
				maxCount = c
			}
		}
		fmt.Printf("counts:     total=%d max=%d\n", total, maxCount)
	}
	return nil
}
