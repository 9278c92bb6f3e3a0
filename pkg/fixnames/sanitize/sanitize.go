// Package sanitize rewrites file names into a portable character set.
//
// Everything here is a pure string transformation: no filesystem access and no
// package-level mutable state. Callers split a name with Split, run the base
// through Sanitize and the extension through Extension, then reassemble.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// disallowedRegex matches any character outside the whitelist.
	disallowedRegex = regexp.MustCompile(`[^a-zA-Z0-9 _.-]`)
	// multiUnderscoreRegex matches runs of underscores.
	multiUnderscoreRegex = regexp.MustCompile(`_+`)
	// extensionRegex matches a trailing dot followed by 1-7 letters or digits.
	extensionRegex = regexp.MustCompile(`\.[a-zA-Z0-9]{1,7}$`)
)

// Options selects the optional rewrite rules.
type Options struct {
	// CollapseDots turns periods into underscores, keeping a leading one.
	CollapseDots bool
	// Lowercase folds ASCII letters to lowercase.
	Lowercase bool
}

// DefaultOptions returns the rule set used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		CollapseDots: true,
		Lowercase:    true,
	}
}

// Sanitize rewrites base (a name without its extension) into the restricted
// alphabet [A-Za-z0-9_.-]. It never fails and is idempotent for a given opts.
func Sanitize(base string, opts Options) string {
	name := disallowedRegex.ReplaceAllString(base, "_")

	if opts.Lowercase {
		name = strings.ToLower(name)
	}

	name = strings.ReplaceAll(name, " ", "_")

	if opts.CollapseDots {
		name = collapseDots(name)
	}

	// Replacing a leading dash can expose a new "__" or "_-_" at the start,
	// so separator cleanup runs until nothing changes.
	for {
		next := fixLeadingDash(collapseSeparators(name))
		if next == name {
			return name
		}
		name = next
	}
}

// collapseDots replaces periods with underscores. A hidden-file leading period
// survives.
func collapseDots(name string) string {
	if strings.HasPrefix(name, ".") {
		return "." + strings.ReplaceAll(name[1:], ".", "_")
	}
	return strings.ReplaceAll(name, ".", "_")
}

func collapseSeparators(name string) string {
	name = multiUnderscoreRegex.ReplaceAllString(name, "_")
	return strings.ReplaceAll(name, "_-_", "-")
}

func fixLeadingDash(name string) string {
	if strings.HasPrefix(name, "-") {
		return "_" + name[1:]
	}
	return name
}

// Split separates a file name into base and extension. The extension is a
// trailing period followed by one to seven ASCII letters or digits, so
// "archive.tar.gz" yields ("archive.tar", ".gz") and "notes.markdown" has no
// extension at all.
func Split(name string) (base, ext string) {
	loc := extensionRegex.FindStringIndex(name)
	if loc == nil {
		return name, ""
	}
	return name[:loc[0]], name[loc[0]:]
}

// Extension applies the rules that touch an extension: only lowercasing.
func Extension(ext string, opts Options) string {
	if opts.Lowercase {
		return strings.ToLower(ext)
	}
	return ext
}

// Name sanitizes a complete file name, keeping its extension apart from the
// base rules.
func Name(name string, opts Options) string {
	base, ext := Split(name)
	return Sanitize(base, opts) + Extension(ext, opts)
}
