package table

import "fmt"

// Table is an ordered collection of equal-length columns.
type Table struct {
	cols   []Column
	byName map[string]int
}

// New builds a table from the given columns. All columns must have unique
// names and equal lengths. A table with no columns has zero rows.
func New(cols ...Column) (*Table, error) {
	t := &Table{
		cols:   make([]Column, 0, len(cols)),
		byName: make(map[string]int, len(cols)),
	}
	for _, c := range cols {
		if _, dup := t.byName[c.Name()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name())
		}
		if len(t.cols) > 0 && c.Len() != t.cols[0].Len() {
			return nil, fmt.Errorf("%w: column %q has %d rows, want %d",
				ErrLengthMismatch, c.Name(), c.Len(), t.cols[0].Len())
		}
		t.byName[c.Name()] = len(t.cols)
		t.cols = append(t.cols, c)
	}
	return t, nil
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.cols) }

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name()
	}
	return names
}

// Columns returns the columns in table order. The returned slice is a copy;
// the columns themselves are shared and immutable.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.cols))
	copy(out, t.cols)
	return out
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// Column returns the named column or ErrColumnNotFound.
func (t *Table) Column(name string) (Column, error) {
	i, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return t.cols[i], nil
}

// ListColumnNames returns the names of all list-valued columns in table order.
func (t *Table) ListColumnNames() []string {
	var names []string
	for _, c := range t.cols {
		if c.DType().List {
			names = append(names, c.Name())
		}
	}
	return names
}

// WithColumn returns a new table with the column replaced in place when a
// column of the same name exists, or appended otherwise.
func (t *Table) WithColumn(c Column) (*Table, error) {
	if len(t.cols) > 0 && c.Len() != t.NumRows() {
		return nil, fmt.Errorf("%w: column %q has %d rows, want %d",
			ErrLengthMismatch, c.Name(), c.Len(), t.NumRows())
	}
	cols := t.Columns()
	if i, ok := t.byName[c.Name()]; ok {
		cols[i] = c
	} else {
		cols = append(cols, c)
	}
	return New(cols...)
}

// DropColumn returns a new table without the named column. Dropping a column
// that does not exist is a no-op.
func (t *Table) DropColumn(name string) *Table {
	i, ok := t.byName[name]
	if !ok {
		return t
	}
	cols := t.Columns()
	cols = append(cols[:i], cols[i+1:]...)
	out, _ := New(cols...)
	return out
}

// Filter returns a new table retaining the rows where keep is true. The mask
// must have exactly one entry per row.
func (t *Table) Filter(keep []bool) (*Table, error) {
	if len(keep) != t.NumRows() {
		return nil, fmt.Errorf("%w: mask has %d entries, want %d",
			ErrLengthMismatch, len(keep), t.NumRows())
	}
	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c.filter(keep)
	}
	return New(cols...)
}

// Equal reports whether both tables hold the same columns (matched by name,
// order-insensitive) with identical types and values.
func (t *Table) Equal(other *Table) bool {
	if other == nil || len(t.cols) != len(other.cols) {
		return false
	}
	for _, c := range t.cols {
		oc, err := other.Column(c.Name())
		if err != nil || !c.equal(oc) {
			return false
		}
	}
	return true
}
