package fixnames

import (
	"io/fs"
	"strings"

	"github.com/arthur-debert/fixnames/pkg/fixnames/filesystem"
	"github.com/arthur-debert/fixnames/pkg/fixnames/sanitize"
)

// Kind classifies what an input path points at.
type Kind int

const (
	// KindMissing means the path could not be looked at.
	KindMissing Kind = iota
	// KindFile is a regular file.
	KindFile
	// KindDirectory is a directory.
	KindDirectory
	// KindSymlink is a symbolic link, which is never followed or renamed.
	KindSymlink
	// KindOther covers devices, sockets and named pipes.
	KindOther
)

// String returns the string representation of the Kind
func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	case KindOther:
		return "other"
	default:
		return "missing"
	}
}

// Entry is one input path together with its classification.
type Entry struct {
	Path string
	Kind Kind
}

// Classify looks at path without following symlinks. Any lookup failure
// yields KindMissing along with the error.
func Classify(fsys filesystem.FileSystem, path string) (Kind, error) {
	info, err := fsys.Lstat(path)
	if err != nil {
		return KindMissing, err
	}
	return kindOf(info.Mode()), nil
}

func kindOf(mode fs.FileMode) Kind {
	switch {
	case mode&fs.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDirectory
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// NameParts is a path split into the pieces the renamer treats differently.
// Dir keeps its trailing separator, so Dir+Base+Ext rebuilds the path.
type NameParts struct {
	Dir  string
	Base string
	Ext  string
}

// SplitPath splits path according to kind. Directories never have an
// extension; regular files use the short alphanumeric extension rule.
// Trailing separators are dropped before splitting.
func SplitPath(path string, kind Kind) NameParts {
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" && path != "" {
		trimmed = "/"
	}

	var parts NameParts
	name := trimmed
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		parts.Dir = trimmed[:i+1]
		name = trimmed[i+1:]
	}

	if kind == KindDirectory {
		parts.Base = name
		return parts
	}
	parts.Base, parts.Ext = sanitize.Split(name)
	return parts
}

// Name returns the final path component.
func (p NameParts) Name() string {
	return p.Base + p.Ext
}

// Join reassembles the parts into a path.
func (p NameParts) Join() string {
	return p.Dir + p.Base + p.Ext
}

// Sanitized returns the parts with the base and extension rewritten. The
// directory part is left alone.
func (p NameParts) Sanitized(opts sanitize.Options) NameParts {
	return NameParts{
		Dir:  p.Dir,
		Base: sanitize.Sanitize(p.Base, opts),
		Ext:  sanitize.Extension(p.Ext, opts),
	}
}

// isDotEntry reports whether path names the current or parent directory.
func isDotEntry(path string) bool {
	if path == "." || path == ".." {
		return true
	}
	name := SplitPath(path, KindDirectory).Base
	return name == "." || name == ".."
}
