// Package voxelio reads and writes the text interchange formats of the voxel
// pipeline: whitespace- or comma-separated XYZ index rows and the JSON grid
// info document that accompanies a dataset.
package voxelio
