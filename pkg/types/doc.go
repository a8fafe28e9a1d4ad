// Package types defines the data model shared by the reconciler: apps and
// their registry, declared link specs, resolved links with their status, and
// the small interfaces (FS, NameLookup) the engine depends on.
package types
