package filesystem

import (
	"io/fs"
)

// FileSystem is the slice of filesystem behaviour the renamer needs: looking
// at an entry without following symlinks, and moving it.
type FileSystem interface {
	Lstat(name string) (fs.FileInfo, error)
	Rename(oldpath, newpath string) error
}

// FixtureFS is implemented by filesystems that tests can populate.
type FixtureFS interface {
	FileSystem
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	Symlink(oldname, newname string) error
}
