package main

import (
	"fmt"
	"io"

	"github.com/arthur-debert/fixnames/pkg/fixnames"
	"github.com/fatih/color"
)

// consoleReporter prints one status line per notable entry. Routine outcomes
// go to out; warnings and failures go to errOut.
type consoleReporter struct {
	out    io.Writer
	errOut io.Writer
	opts   fixnames.Options

	action *color.Color
	skip   *color.Color
	warn   *color.Color
	fail   *color.Color
}

func newConsoleReporter(out, errOut io.Writer, opts fixnames.Options, noColor bool) *consoleReporter {
	r := &consoleReporter{
		out:    out,
		errOut: errOut,
		opts:   opts,
		action: color.New(color.FgGreen),
		skip:   color.New(color.FgCyan),
		warn:   color.New(color.FgYellow),
		fail:   color.New(color.FgRed, color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{r.action, r.skip, r.warn, r.fail} {
			c.DisableColor()
		}
	}
	return r
}

// Report implements fixnames.Reporter.
func (r *consoleReporter) Report(rep fixnames.Report) {
	chatty := r.opts.DryRun || r.opts.Verbose

	switch rep.Decision {
	case fixnames.DecisionUnchanged:
		if chatty {
			r.skip.Fprintf(r.out, "%sFilename acceptable, skipping %s --> %s\n", r.prefix(), rep.Source, rep.Target)
		}
	case fixnames.DecisionCollision:
		if chatty {
			r.warn.Fprintf(r.out, "%sFile exists, skipping %s --> %s\n", r.prefix(), rep.Source, rep.Target)
		}
	case fixnames.DecisionWouldRename:
		r.action.Fprintf(r.out, "%sRename %s %s --> %s\n", r.prefix(), kindLabel(rep.Kind), rep.Source, rep.Target)
	case fixnames.DecisionRenamed:
		if r.opts.Verbose {
			r.action.Fprintf(r.out, "%sRenaming %s --> %s\n", r.prefix(), rep.Source, rep.Target)
		}
	case fixnames.DecisionRenameFailed:
		r.fail.Fprintf(r.errOut, ">>Error: %v\n", rep.Err)
	case fixnames.DecisionSkipSymlink:
		r.warn.Fprintf(r.errOut, "Warning: %s is a symbolic link, not renaming links\n", rep.Source)
	case fixnames.DecisionSkipDirectory:
		if r.opts.Verbose {
			r.skip.Fprintf(r.out, "%sNot renaming directory %s\n", r.prefix(), rep.Source)
		}
	case fixnames.DecisionSkipMissing, fixnames.DecisionSkipUnsupported:
		// logged at debug level by the executor
	}
}

func (r *consoleReporter) prefix() string {
	if r.opts.DryRun {
		return ">Dry Run: "
	}
	return ">"
}

func kindLabel(k fixnames.Kind) string {
	if k == fixnames.KindDirectory {
		return "Directory"
	}
	return "File"
}

// warnTruncated tells the user that stdin held more paths than were read.
func warnTruncated(w io.Writer, limit int) {
	fmt.Fprintf(w, "Warning: maximum number of stdin entries reached (%d), remaining paths ignored\n", limit)
}
