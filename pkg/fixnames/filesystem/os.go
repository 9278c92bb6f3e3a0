package filesystem

import (
	"io/fs"
	"os"
)

// OSFileSystem implements FileSystem on top of the os package. Paths are used
// exactly as given, so both absolute and relative paths work.
type OSFileSystem struct{}

// NewOSFileSystem creates a filesystem backed by the operating system.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Lstat implements FileSystem
func (osfs *OSFileSystem) Lstat(name string) (fs.FileInfo, error) {
	return os.Lstat(name)
}

// Rename implements FileSystem
func (osfs *OSFileSystem) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// WriteFile implements FixtureFS
func (osfs *OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// MkdirAll implements FixtureFS
func (osfs *OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Symlink implements FixtureFS
func (osfs *OSFileSystem) Symlink(oldname, newname string) error {
	return os.Symlink(oldname, newname)
}
