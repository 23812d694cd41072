package charts

import (
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// RenderBar draws one bar per region with the regions on the X axis and the
// metric value as bar height. Region labels are rotated for readability.
func RenderBar(w io.Writer, s BarSeries, title, yLabel string) error {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "지역"
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(plotter.Values(s.Values), vg.Points(24))
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	bars.LineStyle.Width = vg.Length(0)

	p.Add(plotter.NewGrid())
	p.Add(bars)

	p.NominalX(s.Regions...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XRight

	p.Y.Min = 0

	return writePNG(w, p, 9*vg.Inch, 6*vg.Inch)
}
