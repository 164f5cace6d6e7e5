// Command voxelplot renders a 2D projection of a voxel grid's occupied cell
// centers to a PNG image.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gridsense/voxelkit/internal/frames"
	"github.com/gridsense/voxelkit/internal/voxel"
	"github.com/gridsense/voxelkit/internal/voxelio"
)

var (
	dataPath = flag.String("data", "", "path to the XYZ dataset")
	infoPath = flag.String("info", "", "path to the grid info JSON document")
	outPath  = flag.String("out", "voxelplot.png", "output PNG path")
	plane    = flag.String("plane", "xy", "projection plane: xy, xz or yz")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("voxelplot: ")
	flag.Parse()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if *dataPath == "" || *infoPath == "" {
		return fmt.Errorf("-data and -info are required")
	}

	doc, err := voxelio.LoadGridDocument(*infoPath)
	if err != nil {
		return err
	}
	f, err := os.Open(*dataPath)
	if err != nil {
		return err
	}
	tbl, err := voxelio.ReadXYZ(f)
	f.Close()
	if err != nil {
		return err
	}
	g, err := voxel.New(tbl, doc.Info(), frames.NewGraph())
	if err != nil {
		return err
	}
	if g.NumRows() == 0 {
		return fmt.Errorf("dataset has no rows to plot")
	}

	centers := g.AllLocalCenterPoints()
	pts := make(plotter.XYs, len(centers))
	var xLabel, yLabel string
	switch *plane {
	case "xy":
		xLabel, yLabel = "X (m)", "Y (m)"
		for i, c := range centers {
			pts[i] = plotter.XY{X: c.X, Y: c.Y}
		}
	case "xz":
		xLabel, yLabel = "X (m)", "Z (m)"
		for i, c := range centers {
			pts[i] = plotter.XY{X: c.X, Y: c.Z}
		}
	case "yz":
		xLabel, yLabel = "Y (m)", "Z (m)"
		for i, c := range centers {
			pts[i] = plotter.XY{X: c.Y, Y: c.Z}
		}
	default:
		return fmt.Errorf("unknown plane %q (want xy, xz or yz)", *plane)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Occupied cells (%s, frame %s, res %g)", *plane, g.LocalFrameID(), g.Info().Resolution)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	scatter.GlyphStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	p.Add(scatter)

	if err := p.Save(10*vg.Inch, 10*vg.Inch, *outPath); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	log.Printf("wrote %s (%d cells)", *outPath, len(pts))
	return nil
}
