package table

import (
	"fmt"
	"strconv"
)

// Kind enumerates the element types a column can hold.
type Kind int

const (
	KindInt64 Kind = iota
	KindFloat64
	KindBool
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt64:
		return "int64"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// DType describes a column type: an element kind, either scalar or
// list-valued. List columns arise from group-by collection and are consumed
// by explosion.
type DType struct {
	Kind Kind
	List bool
}

func (d DType) String() string {
	if d.List {
		return "list[" + d.Kind.String() + "]"
	}
	return d.Kind.String()
}

// Column is one named, typed column of a Table. Implementations are
// immutable; operations return new columns.
type Column interface {
	Name() string
	Len() int
	DType() DType

	rename(name string) Column
	filter(keep []bool) Column
	// appendRowKey appends a binary group key for one row. Only valid on
	// scalar columns.
	appendRowKey(dst []byte, row int) []byte
	// gather collects the column's values for each row group into a list
	// column (scalar receivers) or fails with ErrNestedList (list receivers).
	gather(groups [][]int) (Column, error)
	// repeatRows replicates each row counts[i] times. Only valid on scalar
	// columns; list columns implement it as explosion alignment instead.
	repeatRows(counts []int) Column
	// listLen reports the list length of one row, or -1 for scalar columns.
	listLen(row int) int
	// explodeRows unpacks a list column into a scalar column, emitting
	// counts[i] elements for row i. Scalar columns are not exploded.
	explodeRows(counts []int) Column
	equal(other Column) bool
}

type elem interface {
	int64 | float64 | bool | string
}

func kindOf[T elem]() Kind {
	var z T
	switch any(z).(type) {
	case int64:
		return KindInt64
	case float64:
		return KindFloat64
	case bool:
		return KindBool
	default:
		return KindString
	}
}

// scalarColumn holds one plain value per row.
type scalarColumn[T elem] struct {
	name string
	vals []T
}

// listColumn holds one variable-length list of values per row.
type listColumn[T elem] struct {
	name string
	vals [][]T
}

// NewInt64 builds a scalar int64 column.
func NewInt64(name string, vals []int64) Column { return &scalarColumn[int64]{name, vals} }

// NewFloat64 builds a scalar float64 column.
func NewFloat64(name string, vals []float64) Column { return &scalarColumn[float64]{name, vals} }

// NewBool builds a scalar bool column.
func NewBool(name string, vals []bool) Column { return &scalarColumn[bool]{name, vals} }

// NewString builds a scalar string column.
func NewString(name string, vals []string) Column { return &scalarColumn[string]{name, vals} }

// NewInt64List builds a list-valued int64 column.
func NewInt64List(name string, vals [][]int64) Column { return &listColumn[int64]{name, vals} }

// NewFloat64List builds a list-valued float64 column.
func NewFloat64List(name string, vals [][]float64) Column { return &listColumn[float64]{name, vals} }

// NewBoolList builds a list-valued bool column.
func NewBoolList(name string, vals [][]bool) Column { return &listColumn[bool]{name, vals} }

// NewStringList builds a list-valued string column.
func NewStringList(name string, vals [][]string) Column { return &listColumn[string]{name, vals} }

func (c *scalarColumn[T]) Name() string { return c.name }
func (c *scalarColumn[T]) Len() int     { return len(c.vals) }
func (c *scalarColumn[T]) DType() DType { return DType{Kind: kindOf[T]()} }

func (c *scalarColumn[T]) rename(name string) Column {
	return &scalarColumn[T]{name: name, vals: c.vals}
}

func (c *scalarColumn[T]) filter(keep []bool) Column {
	out := make([]T, 0, len(c.vals))
	for i, v := range c.vals {
		if keep[i] {
			out = append(out, v)
		}
	}
	return &scalarColumn[T]{name: c.name, vals: out}
}

func (c *scalarColumn[T]) appendRowKey(dst []byte, row int) []byte {
	switch v := any(c.vals[row]).(type) {
	case int64:
		dst = strconv.AppendInt(dst, v, 36)
	case float64:
		dst = strconv.AppendFloat(dst, v, 'g', -1, 64)
	case bool:
		dst = strconv.AppendBool(dst, v)
	case string:
		dst = append(dst, v...)
	}
	return append(dst, 0)
}

func (c *scalarColumn[T]) gather(groups [][]int) (Column, error) {
	out := make([][]T, len(groups))
	for gi, rows := range groups {
		lst := make([]T, len(rows))
		for i, r := range rows {
			lst[i] = c.vals[r]
		}
		out[gi] = lst
	}
	return &listColumn[T]{name: c.name, vals: out}, nil
}

func (c *scalarColumn[T]) repeatRows(counts []int) Column {
	total := 0
	for _, n := range counts {
		total += n
	}
	out := make([]T, 0, total)
	for i, v := range c.vals {
		for n := 0; n < counts[i]; n++ {
			out = append(out, v)
		}
	}
	return &scalarColumn[T]{name: c.name, vals: out}
}

func (c *scalarColumn[T]) listLen(int) int { return -1 }

func (c *scalarColumn[T]) explodeRows(counts []int) Column { return c.repeatRows(counts) }

func (c *scalarColumn[T]) equal(other Column) bool {
	o, ok := other.(*scalarColumn[T])
	if !ok || o.name != c.name || len(o.vals) != len(c.vals) {
		return false
	}
	for i := range c.vals {
		if c.vals[i] != o.vals[i] {
			return false
		}
	}
	return true
}

func (c *listColumn[T]) Name() string { return c.name }
func (c *listColumn[T]) Len() int     { return len(c.vals) }
func (c *listColumn[T]) DType() DType { return DType{Kind: kindOf[T](), List: true} }

func (c *listColumn[T]) rename(name string) Column {
	return &listColumn[T]{name: name, vals: c.vals}
}

func (c *listColumn[T]) filter(keep []bool) Column {
	out := make([][]T, 0, len(c.vals))
	for i, v := range c.vals {
		if keep[i] {
			out = append(out, v)
		}
	}
	return &listColumn[T]{name: c.name, vals: out}
}

func (c *listColumn[T]) appendRowKey(dst []byte, _ int) []byte {
	// Group keys are restricted to scalar columns; Table.GroupByCollect
	// rejects list keys before reaching here.
	return dst
}

func (c *listColumn[T]) gather([][]int) (Column, error) {
	return nil, fmt.Errorf("%w: %q", ErrNestedList, c.name)
}

func (c *listColumn[T]) repeatRows(counts []int) Column {
	total := 0
	for _, n := range counts {
		total += n
	}
	out := make([][]T, 0, total)
	for i, v := range c.vals {
		for n := 0; n < counts[i]; n++ {
			out = append(out, v)
		}
	}
	return &listColumn[T]{name: c.name, vals: out}
}

func (c *listColumn[T]) listLen(row int) int { return len(c.vals[row]) }

func (c *listColumn[T]) explodeRows(counts []int) Column {
	total := 0
	for _, n := range counts {
		total += n
	}
	out := make([]T, 0, total)
	for _, lst := range c.vals {
		out = append(out, lst...)
	}
	return &scalarColumn[T]{name: c.name, vals: out}
}

func (c *listColumn[T]) equal(other Column) bool {
	o, ok := other.(*listColumn[T])
	if !ok || o.name != c.name || len(o.vals) != len(c.vals) {
		return false
	}
	for i := range c.vals {
		if len(c.vals[i]) != len(o.vals[i]) {
			return false
		}
		for j := range c.vals[i] {
			if c.vals[i][j] != o.vals[i][j] {
				return false
			}
		}
	}
	return true
}

func scalarValues[T elem](t *Table, name string) ([]T, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	sc, ok := c.(*scalarColumn[T])
	if !ok {
		return nil, fmt.Errorf("%w: column %q is %s, want %s",
			ErrTypeMismatch, name, c.DType(), DType{Kind: kindOf[T]()})
	}
	return sc.vals, nil
}

func listValues[T elem](t *Table, name string) ([][]T, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	lc, ok := c.(*listColumn[T])
	if !ok {
		return nil, fmt.Errorf("%w: column %q is %s, want %s",
			ErrTypeMismatch, name, c.DType(), DType{Kind: kindOf[T](), List: true})
	}
	return lc.vals, nil
}

// Int64s returns the values of a scalar int64 column. The slice is shared
// with the table and must not be modified.
func Int64s(t *Table, name string) ([]int64, error) { return scalarValues[int64](t, name) }

// Float64s returns the values of a scalar float64 column.
func Float64s(t *Table, name string) ([]float64, error) { return scalarValues[float64](t, name) }

// Bools returns the values of a scalar bool column.
func Bools(t *Table, name string) ([]bool, error) { return scalarValues[bool](t, name) }

// Strings returns the values of a scalar string column.
func Strings(t *Table, name string) ([]string, error) { return scalarValues[string](t, name) }

// Int64Lists returns the values of a list-valued int64 column.
func Int64Lists(t *Table, name string) ([][]int64, error) { return listValues[int64](t, name) }

// Float64Lists returns the values of a list-valued float64 column.
func Float64Lists(t *Table, name string) ([][]float64, error) { return listValues[float64](t, name) }

// BoolLists returns the values of a list-valued bool column.
func BoolLists(t *Table, name string) ([][]bool, error) { return listValues[bool](t, name) }

// StringLists returns the values of a list-valued string column.
func StringLists(t *Table, name string) ([][]string, error) { return listValues[string](t, name) }
