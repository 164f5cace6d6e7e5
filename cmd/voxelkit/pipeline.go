package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gridsense/voxelkit/internal/voxel"
	"github.com/gridsense/voxelkit/internal/voxelio"
	"github.com/gridsense/voxelkit/internal/voxelops"
)

// runPipeline applies the selected transform operators in a fixed order:
// aggregate, count filter, bounds filter, translate.
func runPipeline(args []string) error {
	fs := flag.NewFlagSet("pipeline", flag.ExitOnError)
	dataPath := fs.String("data", "", "path to the XYZ dataset")
	infoPath := fs.String("info", "", "path to the grid info JSON document")
	outPath := fs.String("out", "", "output XYZ path (default stdout)")
	aggregate := fs.Bool("aggregate", false, "merge duplicate indices and recompute counts")
	minCount := fs.Int64("min-count", 0, "drop cells with count below this value")
	bounds := fs.String("bounds", "", "keep cells inside x,y,z:x,y,z (inclusive)")
	translate := fs.String("translate", "", "shift all indices by dx,dy,dz")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := loadGrid(*dataPath, *infoPath)
	if err != nil {
		return err
	}

	if *aggregate {
		if g, err = voxelops.AggregateByIndex(g); err != nil {
			return fmt.Errorf("aggregate: %w", err)
		}
		log.Printf("aggregated to %d cells", g.NumRows())
	}
	if *minCount > 0 {
		if g, err = voxelops.FilterByCount(g, *minCount); err != nil {
			return fmt.Errorf("min-count: %w", err)
		}
		log.Printf("count filter kept %d cells", g.NumRows())
	}
	if *bounds != "" {
		lower, upper, err := parseBounds(*bounds)
		if err != nil {
			return fmt.Errorf("bounds: %w", err)
		}
		if g, err = voxelops.FilterByIndexBounds(g, lower, upper); err != nil {
			return fmt.Errorf("bounds: %w", err)
		}
		log.Printf("bounds filter kept %d cells", g.NumRows())
	}
	if *translate != "" {
		delta, err := parseIndex(*translate)
		if err != nil {
			return fmt.Errorf("translate: %w", err)
		}
		if g, err = voxelops.Translate(g, delta); err != nil {
			return fmt.Errorf("translate: %w", err)
		}
	}

	return writeResult(*outPath, g)
}

func writeResult(path string, g *voxel.Grid) error {
	if path == "" {
		return voxelio.WriteXYZ(os.Stdout, g)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := voxelio.WriteXYZ(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
