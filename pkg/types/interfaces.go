package types

import (
	"io/fs"
)

// FS is the filesystem interface required for link reconciliation
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)
}

// NameLookup resolves an app name to that app's destination directory.
// It is how a link in one app refers into another app's managed directory.
type NameLookup interface {
	DstDir(name string) (string, bool)
}
