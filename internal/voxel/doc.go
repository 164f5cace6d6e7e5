// Package voxel owns the voxel grid value type and its spatial query engine.
//
// Responsibilities: the integrity-validated Grid aggregate (voxel table +
// grid metadata + reference frame handle), index/extreme queries, and
// projection of discrete voxel indices into continuous center points in the
// local frame or, through the frame graph, in any registered frame.
//
// Grids are immutable values: every transform in package voxelops returns a
// new Grid, and the only permitted in-place mutation is swapping the
// reference frame handle via ReplaceReferenceFrames.
package voxel
