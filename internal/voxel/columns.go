package voxel

// Column names of the voxel table contract. X, Y and Z are mandatory int64
// index columns; Count is optional and maintained by aggregation. Any number
// of additional payload columns may be present.
const (
	ColX     = "x"
	ColY     = "y"
	ColZ     = "z"
	ColCount = "count"
)

// IndexColumns returns the mandatory index column names in axis order.
func IndexColumns() []string {
	return []string{ColX, ColY, ColZ}
}
