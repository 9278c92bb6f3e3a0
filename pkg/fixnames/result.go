package fixnames

import (
	"time"
)

// Decision is what happened to a single entry.
type Decision int

const (
	// DecisionUnchanged means the name is already clean.
	DecisionUnchanged Decision = iota
	// DecisionCollision means the clean name is taken; nothing was touched.
	DecisionCollision
	// DecisionWouldRename means a dry run found a rename to do.
	DecisionWouldRename
	// DecisionRenamed means the entry was renamed.
	DecisionRenamed
	// DecisionRenameFailed means the rename call returned an error.
	DecisionRenameFailed
	// DecisionSkipMissing means the path did not exist.
	DecisionSkipMissing
	// DecisionSkipSymlink means the path is a symbolic link.
	DecisionSkipSymlink
	// DecisionSkipUnsupported means the path is a device, socket or pipe.
	DecisionSkipUnsupported
	// DecisionSkipDirectory means directory renaming is disabled.
	DecisionSkipDirectory
)

// Decisions lists every decision in declaration order.
var Decisions = []Decision{
	DecisionUnchanged,
	DecisionCollision,
	DecisionWouldRename,
	DecisionRenamed,
	DecisionRenameFailed,
	DecisionSkipMissing,
	DecisionSkipSymlink,
	DecisionSkipUnsupported,
	DecisionSkipDirectory,
}

// String returns the string representation of the Decision
func (d Decision) String() string {
	switch d {
	case DecisionUnchanged:
		return "unchanged"
	case DecisionCollision:
		return "collision"
	case DecisionWouldRename:
		return "would rename"
	case DecisionRenamed:
		return "renamed"
	case DecisionRenameFailed:
		return "rename failed"
	case DecisionSkipMissing:
		return "missing"
	case DecisionSkipSymlink:
		return "symlink"
	case DecisionSkipUnsupported:
		return "unsupported"
	case DecisionSkipDirectory:
		return "directory skipped"
	default:
		return "unknown"
	}
}

// Report describes the outcome for one entry. Target is empty for entries
// that were skipped before a new name was computed.
type Report struct {
	Decision Decision
	Kind     Kind
	Source   string
	Target   string
	DryRun   bool
	Err      error
}

// Reporter receives a Report as soon as each entry is decided.
type Reporter interface {
	Report(r Report)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(r Report)

// Report implements Reporter.
func (f ReporterFunc) Report(r Report) {
	f(r)
}

// NopReporter discards every report.
type NopReporter struct{}

// Report implements Reporter.
func (NopReporter) Report(Report) {}

// Result holds the overall outcome of a batch.
type Result struct {
	Reports  []Report
	Counts   map[Decision]int
	Duration time.Duration
	// Err is set when the batch stopped early because its context ended.
	Err error
}

func newResult() *Result {
	return &Result{
		Counts: make(map[Decision]int),
	}
}

func (r *Result) add(rep Report) {
	r.Reports = append(r.Reports, rep)
	r.Counts[rep.Decision]++
}

// Failed returns the reports of renames that failed.
func (r *Result) Failed() []Report {
	var failed []Report
	for _, rep := range r.Reports {
		if rep.Decision == DecisionRenameFailed {
			failed = append(failed, rep)
		}
	}
	return failed
}
