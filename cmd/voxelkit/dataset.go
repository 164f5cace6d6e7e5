package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gridsense/voxelkit/internal/frames"
	"github.com/gridsense/voxelkit/internal/voxel"
	"github.com/gridsense/voxelkit/internal/voxelio"
)

// loadGrid reads an XYZ dataset plus its JSON info document and constructs a
// grid over an empty frame graph. CLI operations are local-frame only; a
// populated frame graph is registration data this tool does not manage.
func loadGrid(dataPath, infoPath string) (*voxel.Grid, error) {
	if dataPath == "" {
		return nil, fmt.Errorf("missing required -data flag")
	}
	if infoPath == "" {
		return nil, fmt.Errorf("missing required -info flag")
	}

	doc, err := voxelio.LoadGridDocument(infoPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(dataPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tbl, err := voxelio.ReadXYZ(f)
	if err != nil {
		return nil, err
	}
	return voxel.New(tbl, doc.Info(), frames.NewGraph())
}

// parseIndex parses a comma-separated index triple like "1,-2,3".
func parseIndex(s string) (voxel.Index, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return voxel.Index{}, fmt.Errorf("expected 3 comma-separated integers, got %q", s)
	}
	vals := make([]int64, 3)
	for i, p := range parts {
		v, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return voxel.Index{}, fmt.Errorf("invalid integer %q: %w", p, err)
		}
		vals[i] = v
	}
	return voxel.Index{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

// parseBounds parses a bounding box like "0,0,0:10,10,10".
func parseBounds(s string) (lower, upper voxel.Index, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return voxel.Index{}, voxel.Index{}, fmt.Errorf("expected lower:upper, got %q", s)
	}
	if lower, err = parseIndex(parts[0]); err != nil {
		return voxel.Index{}, voxel.Index{}, err
	}
	if upper, err = parseIndex(parts[1]); err != nil {
		return voxel.Index{}, voxel.Index{}, err
	}
	return lower, upper, nil
}
