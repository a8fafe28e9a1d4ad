// Package filesystem provides filesystem implementations for dotty.
//
// This package contains implementations of the types.FS interface: the
// standard OS filesystem used at runtime and an afero-backed adapter.
package filesystem
