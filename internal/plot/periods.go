package plot

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/kyle-brindley/chaos/internal/study"
)

// WritePeriods prints the per-parameter period classification as a text
// table.
func WritePeriods(w io.Writer, res *study.Result) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "R\tPERIOD\tITERATIONS")
	for p, r := range res.Parameters {
		fmt.Fprintf(tw, "%g\t%s\t%d\n", r, res.Periods[p], res.Steps[p])
	}
	return tw.Flush()
}
