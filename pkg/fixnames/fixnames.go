// Package fixnames renames files and directories so their names only use a
// small, portable character set.
//
// A batch goes through three steps: every input path is classified with
// Lstat, entries are ordered (all regular files before any directory, each
// group in descending path order), and each entry's base name is sanitized
// and compared against the original. Changed names are renamed unless the
// target already exists or the batch is a dry run.
package fixnames

import (
	"github.com/arthur-debert/fixnames/pkg/fixnames/sanitize"
)

// Options configures a batch. It is built once at startup and passed by
// value; nothing in this package mutates it.
type Options struct {
	// RenameDirectories enables the directory phase.
	RenameDirectories bool
	// CollapseDots turns periods in names into underscores, except a leading one.
	CollapseDots bool
	// Lowercase folds names and extensions to ASCII lowercase.
	Lowercase bool
	// DryRun reports what would change without renaming anything.
	DryRun bool
	// Verbose also reports unchanged names, collisions and skipped directories.
	Verbose bool
}

// DefaultOptions returns the defaults: files only, dots collapsed, lowercase.
func DefaultOptions() Options {
	return Options{
		RenameDirectories: false,
		CollapseDots:      true,
		Lowercase:         true,
		DryRun:            false,
		Verbose:           false,
	}
}

// Sanitizer returns the subset of the options the name rules read.
func (o Options) Sanitizer() sanitize.Options {
	return sanitize.Options{
		CollapseDots: o.CollapseDots,
		Lowercase:    o.Lowercase,
	}
}
