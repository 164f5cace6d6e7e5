package table

import "fmt"

// Explode unpacks the named list columns so that each list element gets its
// own row, replicating every other column's scalar value across the generated
// rows. With no names given, every list column in the table is exploded.
//
// All exploded columns must agree on the list length of each row; unequal
// lengths fail with ErrRaggedLists. A row whose lists are empty produces no
// output rows.
func (t *Table) Explode(names ...string) (*Table, error) {
	if len(names) == 0 {
		names = t.ListColumnNames()
	}
	if len(names) == 0 {
		return New(t.Columns()...)
	}

	exploding := make(map[string]bool, len(names))
	for _, name := range names {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		if !c.DType().List {
			return nil, fmt.Errorf("%w: column %q is not list-valued", ErrTypeMismatch, name)
		}
		exploding[name] = true
	}

	// Per-row output multiplicity, shared by every column.
	counts := make([]int, t.NumRows())
	for row := range counts {
		counts[row] = -1
	}
	for _, c := range t.cols {
		if !exploding[c.Name()] {
			continue
		}
		for row := 0; row < t.NumRows(); row++ {
			n := c.listLen(row)
			if counts[row] == -1 {
				counts[row] = n
			} else if counts[row] != n {
				return nil, fmt.Errorf("%w: row %d has lengths %d and %d",
					ErrRaggedLists, row, counts[row], n)
			}
		}
	}

	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		if exploding[c.Name()] {
			cols[i] = c.explodeRows(counts)
		} else {
			cols[i] = c.repeatRows(counts)
		}
	}
	return New(cols...)
}
