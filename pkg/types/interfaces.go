package types

import (
	"io/fs"
)

// FS is the filesystem interface required for barrel operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	Rename(oldpath, newpath string) error

	// DirFS returns a read-only io/fs view rooted at dir, used by the
	// glob matcher. Paths inside it are slash-separated and relative.
	DirFS(dir string) fs.FS
}
