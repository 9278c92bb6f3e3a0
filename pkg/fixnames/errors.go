package fixnames

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks an input path that does not exist.
	ErrNotFound = errors.New("path not found")
	// ErrSymlink marks a symbolic link; links are never renamed.
	ErrSymlink = errors.New("symbolic link")
	// ErrUnsupported marks an entry that is neither file, directory nor link.
	ErrUnsupported = errors.New("unsupported file type")
	// ErrCollision marks a target name that is already taken.
	ErrCollision = errors.New("target already exists")
)

// RenameError reports a failed rename of a single entry.
type RenameError struct {
	Source string
	Target string
	Cause  error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("failed to rename %s --> %s: %v", e.Source, e.Target, e.Cause)
}

func (e *RenameError) Unwrap() error {
	return e.Cause
}
