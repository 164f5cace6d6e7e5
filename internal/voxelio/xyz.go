package voxelio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gridsense/voxelkit/internal/table"
	"github.com/gridsense/voxelkit/internal/voxel"
)

// ReadXYZ parses voxel index rows from r. Each non-empty line holds three
// integers `x y z`, optionally followed by a fourth non-negative integer
// count. Fields are separated by whitespace or commas; lines starting with
// '#' are comments. All rows must agree on whether the count field is
// present.
func ReadXYZ(r io.Reader) (*table.Table, error) {
	var (
		xs, ys, zs, counts []int64
		hasCount           = -1 // unknown until the first data line
		lineNo             int
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		switch len(fields) {
		case 3, 4:
		default:
			return nil, fmt.Errorf("voxelio: line %d: expected 3 or 4 fields, got %d", lineNo, len(fields))
		}

		withCount := len(fields) == 4
		if hasCount == -1 {
			hasCount = 0
			if withCount {
				hasCount = 1
			}
		} else if (hasCount == 1) != withCount {
			return nil, fmt.Errorf("voxelio: line %d: inconsistent count field", lineNo)
		}

		vals := make([]int64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseInt(f, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("voxelio: line %d: invalid integer %q: %w", lineNo, f, err)
			}
			vals[i] = v
		}
		if withCount && vals[3] < 0 {
			return nil, fmt.Errorf("voxelio: line %d: negative count %d", lineNo, vals[3])
		}

		xs = append(xs, vals[0])
		ys = append(ys, vals[1])
		zs = append(zs, vals[2])
		if withCount {
			counts = append(counts, vals[3])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("voxelio: read: %w", err)
	}

	cols := []table.Column{
		table.NewInt64(voxel.ColX, xs),
		table.NewInt64(voxel.ColY, ys),
		table.NewInt64(voxel.ColZ, zs),
	}
	if hasCount == 1 {
		cols = append(cols, table.NewInt64(voxel.ColCount, counts))
	}
	return table.New(cols...)
}

// WriteXYZ writes the grid's index rows (and count column, when present) as
// whitespace-separated text, one row per line.
func WriteXYZ(w io.Writer, g *voxel.Grid) error {
	bw := bufio.NewWriter(w)
	counts, hasCount := g.Counts()
	for i, idx := range g.AllCellIndices() {
		var err error
		if hasCount {
			_, err = fmt.Fprintf(bw, "%d %d %d %d\n", idx.X, idx.Y, idx.Z, counts[i])
		} else {
			_, err = fmt.Fprintf(bw, "%d %d %d\n", idx.X, idx.Y, idx.Z)
		}
		if err != nil {
			return fmt.Errorf("voxelio: write row %d: %w", i, err)
		}
	}
	return bw.Flush()
}
