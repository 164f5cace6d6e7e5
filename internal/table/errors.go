package table

import "errors"

// Store errors. Callers branch on these with errors.Is.
var (
	// ErrColumnNotFound indicates a column name that is not in the table.
	ErrColumnNotFound = errors.New("table: column not found")
	// ErrTypeMismatch indicates a column holds a different type than the
	// operation requires.
	ErrTypeMismatch = errors.New("table: column type mismatch")
	// ErrLengthMismatch indicates columns or masks of unequal length.
	ErrLengthMismatch = errors.New("table: length mismatch")
	// ErrDuplicateColumn indicates two columns sharing a name.
	ErrDuplicateColumn = errors.New("table: duplicate column name")
	// ErrRaggedLists indicates a row whose list columns have unequal lengths,
	// which cannot be exploded.
	ErrRaggedLists = errors.New("table: ragged list lengths in row")
	// ErrNestedList indicates an operation that would need a list of lists,
	// which this store does not represent.
	ErrNestedList = errors.New("table: nested list columns are not supported")
)
