package plot

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/kyle-brindley/chaos/internal/study"
)

// SaveCurves writes the time-series view to a PNG file: one line per
// (parameter, initial state) pair against iteration index, colored by
// parameter with dash style cycling per initial state.
func SaveCurves(path string, res *study.Result) error {
	p := plot.New()
	p.Title.Text = mapTitle(res.MapName)
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "x"

	for pi := range res.Parameters {
		for row := range res.InitialStates {
			prefix := res.Prefix(pi, row)
			pts := make(plotter.XYs, len(prefix))
			for i, v := range prefix {
				pts[i].X = float64(i)
				pts[i].Y = v
			}
			line, err := plotter.NewLine(pts)
			if err != nil {
				return err
			}
			line.LineStyle = seriesStyle(pi, row)
			p.Add(line)
			if row == 0 {
				p.Legend.Add(seriesLabel(res, pi), line)
			}
		}
	}
	p.Legend.Top = false
	p.Legend.Left = false

	return savePNG(p, path)
}

// CurvesASCII renders the time-series view for the terminal, one chart
// block per parameter.
func CurvesASCII(res *study.Result, width, height int) string {
	var sb strings.Builder
	for pi := range res.Parameters {
		series := make([][]float64, len(res.InitialStates))
		for row := range res.InitialStates {
			series[row] = res.Prefix(pi, row)
		}
		graph := asciigraph.PlotMany(series,
			asciigraph.Height(height),
			asciigraph.Width(width),
			asciigraph.Caption(seriesLabel(res, pi)),
		)
		sb.WriteString(graph)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func seriesLabel(res *study.Result, pi int) string {
	return fmt.Sprintf("r=%g, period=%s", res.Parameters[pi], res.Periods[pi])
}
