package charts

import (
	"image/color"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// RenderLine draws the metric value against year as a connected, marked
// line. The X axis ticks are forced to the full set of distinct years in the
// series so every year is labeled.
func RenderLine(w io.Writer, s LineSeries, title, yLabel string) error {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "년도"
	p.Y.Label.Text = yLabel

	xys := make(plotter.XYs, len(s.Years))
	for i := range s.Years {
		xys[i].X = float64(s.Years[i])
		xys[i].Y = s.Values[i]
	}

	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	line.Width = vg.Points(1.5)
	points.Shape = draw.CircleGlyph{}
	points.Radius = vg.Points(3)
	points.Color = line.Color

	p.Add(plotter.NewGrid())
	p.Add(line, points)

	ticks := make([]plot.Tick, len(s.Years))
	for i, year := range s.Years {
		ticks[i] = plot.Tick{Value: float64(year), Label: strconv.Itoa(year)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	return writePNG(w, p, 8*vg.Inch, 5*vg.Inch)
}
