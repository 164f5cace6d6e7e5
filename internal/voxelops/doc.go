// Package voxelops implements the pure transform operators over voxel grids:
// aggregation by index, explosion of grouped attributes, density and
// bounding-box filtering, and index translation.
//
// Operators are stateless functions from one Grid to a brand-new Grid; the
// input is never mutated and the result is re-validated through the grid
// constructor. They compose in any order the caller chooses.
package voxelops
