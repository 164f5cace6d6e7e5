package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/gridsense/voxelkit/internal/voxelops"
)

// runReport renders the grid's count distribution as a standalone HTML bar
// chart. Grids without a count column are aggregated first so every cell
// carries one.
func runReport(args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	dataPath := fs.String("data", "", "path to the XYZ dataset")
	infoPath := fs.String("info", "", "path to the grid info JSON document")
	outPath := fs.String("out", "voxel_report.html", "output HTML path")
	title := fs.String("title", "Voxel count distribution", "chart title")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := loadGrid(*dataPath, *infoPath)
	if err != nil {
		return err
	}
	counts, ok := g.Counts()
	if !ok {
		if g, err = voxelops.AggregateByIndex(g); err != nil {
			return err
		}
		counts, _ = g.Counts()
	}
	if len(counts) == 0 {
		return fmt.Errorf("dataset has no rows to report on")
	}

	// Histogram: count value -> number of cells holding it.
	hist := make(map[int64]int)
	for _, c := range counts {
		hist[c]++
	}
	values := make([]int64, 0, len(hist))
	for v := range hist {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	labels := make([]string, len(values))
	bars := make([]opts.BarData, len(values))
	for i, v := range values {
		labels[i] = strconv.FormatInt(v, 10)
		bars[i] = opts.BarData{Value: hist[v]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: *title,
			Width:     "1200px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    *title,
			Subtitle: fmt.Sprintf("frame %s, resolution %g, %d cells", g.LocalFrameID(), g.Info().Resolution, g.NumRows()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries("cells", bars)

	f, err := os.Create(*outPath)
	if err != nil {
		return err
	}
	if err := bar.Render(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Printf("wrote %s", *outPath)
	return nil
}
