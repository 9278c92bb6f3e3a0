package filesystem

import (
	"io/fs"
	"path"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

// TestFileSystem extends fstest.MapFS to implement FixtureFS.
// Paths must be valid io/fs paths (slash separated, no leading slash).
type TestFileSystem struct {
	fstest.MapFS

	// FailRename makes Rename of the given source path return the error.
	FailRename map[string]error

	// FailLstat makes Lstat of the given path return the error.
	FailLstat map[string]error

	// Renames records every successful rename in call order.
	Renames [][2]string
}

// NewTestFileSystem creates a new empty test filesystem
func NewTestFileSystem() *TestFileSystem {
	return NewTestFileSystemFromMap(make(fstest.MapFS))
}

// NewTestFileSystemFromMap creates a test filesystem from an existing map
func NewTestFileSystemFromMap(files map[string]*fstest.MapFile) *TestFileSystem {
	return &TestFileSystem{
		MapFS:      files,
		FailRename: make(map[string]error),
		FailLstat:  make(map[string]error),
	}
}

// WriteFile implements FixtureFS for testing
func (tfs *TestFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if !fs.ValidPath(name) {
		return &fs.PathError{Op: "writefile", Path: name, Err: fs.ErrInvalid}
	}
	tfs.MapFS[name] = &fstest.MapFile{
		Data: data,
		Mode: perm,
	}
	return nil
}

// MkdirAll implements FixtureFS for testing
func (tfs *TestFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	if !fs.ValidPath(p) {
		return &fs.PathError{Op: "mkdirall", Path: p, Err: fs.ErrInvalid}
	}
	tfs.MapFS[p] = &fstest.MapFile{
		Mode: perm | fs.ModeDir,
	}
	return nil
}

// Symlink implements FixtureFS for testing. Dangling links are allowed.
func (tfs *TestFileSystem) Symlink(oldname, newname string) error {
	if !fs.ValidPath(newname) {
		return &fs.PathError{Op: "symlink", Path: newname, Err: fs.ErrInvalid}
	}
	if _, exists := tfs.MapFS[newname]; exists {
		return &fs.PathError{Op: "symlink", Path: newname, Err: fs.ErrExist}
	}
	tfs.MapFS[newname] = &fstest.MapFile{
		Data: []byte(oldname), // link target
		Mode: fs.ModeSymlink | 0777,
	}
	return nil
}

// Lstat implements FileSystem for testing. Symlink entries are reported as
// links and never followed.
func (tfs *TestFileSystem) Lstat(name string) (fs.FileInfo, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "lstat", Path: name, Err: fs.ErrInvalid}
	}
	if err, ok := tfs.FailLstat[name]; ok {
		return nil, &fs.PathError{Op: "lstat", Path: name, Err: err}
	}
	if file, ok := tfs.MapFS[name]; ok && file.Mode&fs.ModeSymlink != 0 {
		return &mapFileInfo{name: path.Base(name), file: file}, nil
	}
	return fs.Stat(tfs.MapFS, name)
}

// Rename implements FileSystem for testing. Directories move together with
// everything beneath them. Existing targets are never overwritten.
func (tfs *TestFileSystem) Rename(oldpath, newpath string) error {
	if !fs.ValidPath(oldpath) || !fs.ValidPath(newpath) {
		return &fs.PathError{Op: "rename", Path: newpath, Err: fs.ErrInvalid}
	}
	if err, ok := tfs.FailRename[oldpath]; ok {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: err}
	}
	if !tfs.exists(oldpath) {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	if tfs.exists(newpath) {
		return &fs.PathError{Op: "rename", Path: newpath, Err: fs.ErrExist}
	}

	moved := make(map[string]*fstest.MapFile)
	for name, file := range tfs.MapFS {
		switch {
		case name == oldpath:
			moved[newpath] = file
		case strings.HasPrefix(name, oldpath+"/"):
			moved[newpath+name[len(oldpath):]] = file
		default:
			continue
		}
		delete(tfs.MapFS, name)
	}
	for name, file := range moved {
		tfs.MapFS[name] = file
	}

	tfs.Renames = append(tfs.Renames, [2]string{oldpath, newpath})
	return nil
}

// Exists reports whether an entry (explicit or implied by a child) exists
func (tfs *TestFileSystem) Exists(name string) bool {
	return tfs.exists(name)
}

func (tfs *TestFileSystem) exists(name string) bool {
	_, err := tfs.Lstat(name)
	return err == nil
}

// mapFileInfo describes a MapFS entry without resolving it.
type mapFileInfo struct {
	name string
	file *fstest.MapFile
}

func (i *mapFileInfo) Name() string       { return i.name }
func (i *mapFileInfo) Size() int64        { return int64(len(i.file.Data)) }
func (i *mapFileInfo) Mode() fs.FileMode  { return i.file.Mode }
func (i *mapFileInfo) ModTime() time.Time { return i.file.ModTime }
func (i *mapFileInfo) IsDir() bool        { return i.file.Mode.IsDir() }
func (i *mapFileInfo) Sys() any           { return i.file.Sys }

// TestHelper provides utilities for tests that drive the renamer
type TestHelper struct {
	t  *testing.T
	fs *TestFileSystem
}

// NewTestHelper creates a new test helper with a fresh filesystem
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{
		t:  t,
		fs: NewTestFileSystem(),
	}
}

// FileSystem returns the test filesystem
func (th *TestHelper) FileSystem() *TestFileSystem {
	return th.fs
}

// WriteFile writes a file and fails the test on error
func (th *TestHelper) WriteFile(name string, data []byte) {
	th.t.Helper()
	if err := th.fs.WriteFile(name, data, 0644); err != nil {
		th.t.Fatalf("Failed to write file %s: %v", name, err)
	}
}

// MkdirAll creates a directory and fails the test on error
func (th *TestHelper) MkdirAll(p string) {
	th.t.Helper()
	if err := th.fs.MkdirAll(p, 0755); err != nil {
		th.t.Fatalf("Failed to create directory %s: %v", p, err)
	}
}

// Symlink creates a symlink and fails the test on error
func (th *TestHelper) Symlink(target, link string) {
	th.t.Helper()
	if err := th.fs.Symlink(target, link); err != nil {
		th.t.Fatalf("Failed to create symlink %s: %v", link, err)
	}
}

// AssertExists fails the test if name does not exist
func (th *TestHelper) AssertExists(name string) {
	th.t.Helper()
	if !th.fs.Exists(name) {
		th.t.Errorf("Expected %s to exist, but it does not", name)
	}
}

// AssertNotExists fails the test if name exists
func (th *TestHelper) AssertNotExists(name string) {
	th.t.Helper()
	if th.fs.Exists(name) {
		th.t.Errorf("Expected %s to not exist, but it does", name)
	}
}

// AssertFileContent checks that a file has the expected content
func (th *TestHelper) AssertFileContent(name string, expected []byte) {
	th.t.Helper()
	file, ok := th.fs.MapFS[name]
	if !ok {
		th.t.Errorf("Expected file %s to exist", name)
		return
	}
	if string(file.Data) != string(expected) {
		th.t.Errorf("File %s content mismatch:\nExpected: %q\nActual: %q", name, expected, file.Data)
	}
}
