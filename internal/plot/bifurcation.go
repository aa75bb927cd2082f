package plot

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kyle-brindley/chaos/internal/study"
)

// BifurcationSeries selects the long-run values plotted for one parameter,
// taken from the first initial-state row. A detected period contributes
// its cycle's worth of tail values; an undetermined parameter contributes
// an evenly spaced subsample of samples points, or its full valid
// trajectory when samples is zero.
func BifurcationSeries(res *study.Result, p, samples int) []float64 {
	if tail := res.Tail(p, 0); tail != nil {
		return tail
	}
	prefix := res.Prefix(p, 0)
	if samples <= 0 || samples >= len(prefix) {
		return prefix
	}
	if samples == 1 {
		return prefix[len(prefix)-1:]
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = prefix[i*(len(prefix)-1)/(samples-1)]
	}
	return out
}

// SaveBifurcation writes the bifurcation view to a PNG file: for each
// parameter, its long-run values scattered at x = parameter.
func SaveBifurcation(path string, res *study.Result, opts Options) error {
	p := plot.New()
	p.Title.Text = mapTitle(res.MapName)
	p.X.Label.Text = "r"
	p.Y.Label.Text = "x"

	var pts plotter.XYs
	for pi, r := range res.Parameters {
		for _, v := range BifurcationSeries(res, pi, opts.IterationSamples) {
			pts = append(pts, plotter.XY{X: r, Y: v})
		}
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = palette[0]
	scatter.GlyphStyle.Radius = vg.Points(opts.MarkerSize / 4)
	p.Add(scatter)

	return savePNG(p, path)
}

// BifurcationASCII renders the bifurcation view on a rune canvas for the
// terminal, parameters along x and trajectory values along y.
func BifurcationASCII(res *study.Result, width, height int, opts Options) string {
	if width <= 0 || height <= 0 || len(res.Parameters) == 0 {
		return ""
	}

	// A trajectory can overflow to +-Inf in one step before the negative
	// stop triggers; non-finite values have no row on the canvas and are
	// dropped from the value range as well.
	series := make([][]float64, len(res.Parameters))
	var all []float64
	for pi := range res.Parameters {
		series[pi] = BifurcationSeries(res, pi, opts.IterationSamples)
		for _, v := range series[pi] {
			if isFinite(v) {
				all = append(all, v)
			}
		}
	}
	if len(all) == 0 {
		return ""
	}
	minVal, maxVal := floats.Min(all), floats.Max(all)
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for pi, values := range series {
		col := pi * (width - 1) / max(len(series)-1, 1)
		for _, v := range values {
			if !isFinite(v) {
				continue
			}
			rowPos := int((maxVal - v) / (maxVal - minVal) * float64(height-1))
			canvas[rowPos][col] = '·'
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "x in [%.3f, %.3f]\n", minVal, maxVal)
	for _, line := range canvas {
		sb.WriteString(strings.TrimRight(string(line), " "))
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "r in [%g, %g]\n", res.Parameters[0], res.Parameters[len(res.Parameters)-1])
	return sb.String()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
