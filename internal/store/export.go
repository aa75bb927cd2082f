package store

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/kyle-brindley/chaos/internal/study"
)

// ExportCSV writes a study in long format, one row per computed value:
// r, x_0, iteration, value. Unset iteration slots are omitted.
func ExportCSV(w io.Writer, res *study.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"r", "x_0", "iteration", "value"}); err != nil {
		return err
	}
	for p, r := range res.Parameters {
		for row, x0 := range res.InitialStates {
			for i, v := range res.Prefix(p, row) {
				record := []string{
					strconv.FormatFloat(r, 'g', -1, 64),
					strconv.FormatFloat(x0, 'g', -1, 64),
					strconv.Itoa(i),
					strconv.FormatFloat(v, 'g', -1, 64),
				}
				if err := cw.Write(record); err != nil {
					return err
				}
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
