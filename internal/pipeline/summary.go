package pipeline

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
)

// PrintSummary writes the per-dataset record counts of a run.
func PrintSummary(w io.Writer, s Summary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "run %s (seed %d, %s..%s)\n", s.RunID, s.Seed, s.Months[0], s.Months[len(s.Months)-1])
	for _, ds := range slices.Concat(s.Datasets, []DatasetSummary{s.Lookup}) {
		fmt.Fprintf(tw, "  %s\t%s records\t%s\t%s\n",
			ds.Name, humanize.Comma(int64(ds.Records)), humanize.Bytes(uint64(ds.Bytes)), ds.Location)
	}
	fmt.Fprintf(tw, "total\t%s records\n", humanize.Comma(int64(s.Total)))

	return tw.Flush()
}
