package voxel

import (
	"errors"
	"fmt"
)

// ErrEmptyGrid indicates an extreme query (index bounds, center-point
// extremes) on a grid with zero rows.
var ErrEmptyGrid = errors.New("voxel: empty grid")

// IntegrityError indicates voxel data that violates the table/metadata
// contract: missing or mistyped index columns, a non-positive resolution, a
// malformed frame id, or a missing frame graph. It is raised at every Grid
// construction.
type IntegrityError struct {
	Reason string
	Err    error
}

func (e *IntegrityError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("voxel: data integrity: %s: %v", e.Reason, e.Err)
	}
	return "voxel: data integrity: " + e.Reason
}

func (e *IntegrityError) Unwrap() error { return e.Err }

func integrityErr(reason string, err error) error {
	return &IntegrityError{Reason: reason, Err: err}
}
