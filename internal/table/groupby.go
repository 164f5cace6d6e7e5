package table

import "fmt"

// GroupByCollect groups rows by the given scalar key columns. In the result,
// each distinct key combination produces one row (in first-appearance order):
// the key columns keep their scalar values, every other column's values are
// collected into a list, and an int64 column named countName holds the number
// of source rows merged into the group.
//
// A pre-existing column named countName is dropped rather than collected, so
// the count always reflects this grouping pass.
func (t *Table) GroupByCollect(keys []string, countName string) (*Table, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: group-by requires at least one key column", ErrColumnNotFound)
	}
	keyCols := make([]Column, len(keys))
	for i, name := range keys {
		c, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		if c.DType().List {
			return nil, fmt.Errorf("%w: key column %q is list-valued", ErrTypeMismatch, name)
		}
		keyCols[i] = c
	}

	// Assign rows to groups in first-appearance order.
	groupOf := make(map[string]int, t.NumRows())
	var groups [][]int
	var key []byte
	for row := 0; row < t.NumRows(); row++ {
		key = key[:0]
		for _, c := range keyCols {
			key = c.appendRowKey(key, row)
		}
		gi, ok := groupOf[string(key)]
		if !ok {
			gi = len(groups)
			groupOf[string(key)] = gi
			groups = append(groups, nil)
		}
		groups[gi] = append(groups[gi], row)
	}

	firstRows := make([]bool, t.NumRows())
	for _, rows := range groups {
		firstRows[rows[0]] = true
	}

	isKey := make(map[string]bool, len(keys))
	for _, name := range keys {
		isKey[name] = true
	}

	out := make([]Column, 0, len(t.cols)+1)
	for _, c := range t.cols {
		switch {
		case isKey[c.Name()]:
			out = append(out, c.filter(firstRows))
		case c.Name() == countName:
			// replaced by the group count below
		default:
			collected, err := c.gather(groups)
			if err != nil {
				return nil, err
			}
			out = append(out, collected)
		}
	}

	counts := make([]int64, len(groups))
	for gi, rows := range groups {
		counts[gi] = int64(len(rows))
	}
	out = append(out, NewInt64(countName, counts))

	return New(out...)
}
