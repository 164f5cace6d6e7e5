// Package table implements a small in-memory columnar table: named typed
// columns of equal length with the relational operations the voxel pipeline
// needs (mask filtering, group-by with list collection and group counts, and
// explosion of list-valued columns back into rows).
//
// Tables are treated as immutable values: every operation returns a new
// Table, and slices handed out by the typed accessors must not be modified
// by callers.
package table
