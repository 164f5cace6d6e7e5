// Package voxeldb persists voxel grid datasets in a local SQLite database.
//
// Each dataset is one row: metadata columns plus a gob+gzip blob holding the
// voxel table's columns. Reference frame graphs are registration data owned
// by the caller and are not persisted; Load takes the resolver to attach.
//
// The schema is managed with embedded golang-migrate migrations and is
// applied on Open.
package voxeldb
