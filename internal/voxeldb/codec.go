package voxeldb

import (
	"bytes"
	"compress/gzip"
	"encoding/gob"
	"fmt"

	"github.com/gridsense/voxelkit/internal/table"
)

// columnRecord is the gob-serializable form of one table column. Exactly one
// value slice is populated, selected by Kind and List.
type columnRecord struct {
	Name string
	Kind uint8 // 0 int64, 1 float64, 2 bool, 3 string
	List bool

	Ints    []int64
	Floats  []float64
	Bools   []bool
	Strs    []string
	IntLs   [][]int64
	FloatLs [][]float64
	BoolLs  [][]bool
	StrLs   [][]string
}

// encodeColumns compresses the table's columns using gob encoding and gzip
// compression.
func encodeColumns(t *table.Table) ([]byte, error) {
	records := make([]columnRecord, 0, t.NumCols())
	for _, c := range t.Columns() {
		rec := columnRecord{Name: c.Name(), Kind: uint8(c.DType().Kind), List: c.DType().List}
		var err error
		switch {
		case !rec.List && c.DType().Kind == table.KindInt64:
			rec.Ints, err = table.Int64s(t, rec.Name)
		case !rec.List && c.DType().Kind == table.KindFloat64:
			rec.Floats, err = table.Float64s(t, rec.Name)
		case !rec.List && c.DType().Kind == table.KindBool:
			rec.Bools, err = table.Bools(t, rec.Name)
		case !rec.List && c.DType().Kind == table.KindString:
			rec.Strs, err = table.Strings(t, rec.Name)
		case rec.List && c.DType().Kind == table.KindInt64:
			rec.IntLs, err = table.Int64Lists(t, rec.Name)
		case rec.List && c.DType().Kind == table.KindFloat64:
			rec.FloatLs, err = table.Float64Lists(t, rec.Name)
		case rec.List && c.DType().Kind == table.KindBool:
			rec.BoolLs, err = table.BoolLists(t, rec.Name)
		default:
			rec.StrLs, err = table.StringLists(t, rec.Name)
		}
		if err != nil {
			return nil, fmt.Errorf("encode column %q: %w", rec.Name, err)
		}
		records = append(records, rec)
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	enc := gob.NewEncoder(gz)
	if err := enc.Encode(records); err != nil {
		gz.Close()
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeColumns decompresses and decodes a column blob back into a table.
func decodeColumns(blob []byte) (*table.Table, error) {
	if len(blob) == 0 {
		return nil, fmt.Errorf("voxeldb: empty column blob")
	}
	gz, err := gzip.NewReader(bytes.NewReader(blob))
	if err != nil {
		return nil, fmt.Errorf("voxeldb: gzip reader: %w", err)
	}
	defer gz.Close()

	var records []columnRecord
	if err := gob.NewDecoder(gz).Decode(&records); err != nil {
		return nil, fmt.Errorf("voxeldb: decode column blob: %w", err)
	}

	cols := make([]table.Column, 0, len(records))
	for _, rec := range records {
		switch {
		case !rec.List && table.Kind(rec.Kind) == table.KindInt64:
			cols = append(cols, table.NewInt64(rec.Name, rec.Ints))
		case !rec.List && table.Kind(rec.Kind) == table.KindFloat64:
			cols = append(cols, table.NewFloat64(rec.Name, rec.Floats))
		case !rec.List && table.Kind(rec.Kind) == table.KindBool:
			cols = append(cols, table.NewBool(rec.Name, rec.Bools))
		case !rec.List && table.Kind(rec.Kind) == table.KindString:
			cols = append(cols, table.NewString(rec.Name, rec.Strs))
		case rec.List && table.Kind(rec.Kind) == table.KindInt64:
			cols = append(cols, table.NewInt64List(rec.Name, rec.IntLs))
		case rec.List && table.Kind(rec.Kind) == table.KindFloat64:
			cols = append(cols, table.NewFloat64List(rec.Name, rec.FloatLs))
		case rec.List && table.Kind(rec.Kind) == table.KindBool:
			cols = append(cols, table.NewBoolList(rec.Name, rec.BoolLs))
		default:
			cols = append(cols, table.NewStringList(rec.Name, rec.StrLs))
		}
	}
	return table.New(cols...)
}
