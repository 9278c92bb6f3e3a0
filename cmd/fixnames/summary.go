package main

import (
	"io"
	"time"

	"github.com/arthur-debert/fixnames/pkg/fixnames"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

// printSummary renders the per-outcome counts of a finished batch.
func printSummary(w io.Writer, result *fixnames.Result) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Outcome", "Entries"})

	total := 0
	for _, d := range fixnames.Decisions {
		n := result.Counts[d]
		if n == 0 {
			continue
		}
		total += n
		tbl.AppendRow(table.Row{d.String(), humanize.Comma(int64(n))})
	}

	tbl.AppendFooter(table.Row{"Total", humanize.Comma(int64(total))})
	tbl.SetCaption("finished in %s", result.Duration.Round(time.Millisecond))
	tbl.Render()
}
