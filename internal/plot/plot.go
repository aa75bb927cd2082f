// Package plot renders study results as time-series curves and
// bifurcation scatter plots, either to PNG files or to the terminal.
package plot

import (
	"bufio"
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Options controls the rendered plots.
type Options struct {
	// MarkerSize is the bifurcation scatter marker radius in points.
	MarkerSize float64
	// IterationSamples caps the points plotted per parameter when no
	// period was detected. Zero plots the full valid trajectory.
	IterationSamples int
}

// DefaultOptions mirrors the CLI defaults.
func DefaultOptions() Options {
	return Options{MarkerSize: 8, IterationSamples: 8}
}

// palette cycles across parameters; dashes cycle across initial states.
var palette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	color.RGBA{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
	color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
}

var dashPatterns = [][]vg.Length{
	nil,
	{vg.Points(6), vg.Points(2)},
	{vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)},
	{vg.Points(1), vg.Points(2)},
}

func seriesStyle(parameter, row int) draw.LineStyle {
	return draw.LineStyle{
		Color:  palette[parameter%len(palette)],
		Width:  vg.Points(1.5),
		Dashes: dashPatterns[row%len(dashPatterns)],
	}
}

func mapTitle(mapName string) string {
	if mapName == "sine" {
		return "x_next = r sin(pi x)"
	}
	return "x_next = r x (1 - x)"
}

func savePNG(p *plot.Plot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	c := vgimg.NewWith(
		vgimg.UseWH(8*vg.Inch, 6*vg.Inch),
		vgimg.UseDPI(150),
	)
	p.Draw(draw.New(c))

	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(bw); err != nil {
		return fmt.Errorf("plot: write %s: %w", path, err)
	}
	return bw.Flush()
}
