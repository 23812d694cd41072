package charts

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"econdash.hanlabs.org/internal/models"
)

// corrGrid adapts a correlation matrix to plotter.GridXYZ. Cell (c, r) is
// the correlation of column c with column r.
type corrGrid struct {
	corr models.CorrelationPayload
}

func (g corrGrid) Dims() (c, r int) {
	n := len(g.corr.Columns)
	return n, n
}

func (g corrGrid) Z(c, r int) float64 { return g.corr.Matrix[r][c] }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }

// RenderHeatmap draws the correlation matrix as an annotated heatmap with a
// diverging blue/red scale fixed to [-1, 1] and two-decimal annotations.
func RenderHeatmap(w io.Writer, corr models.CorrelationPayload, title string) error {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)

	colorMap := moreland.SmoothBlueRed()
	colorMap.SetMin(-1)
	colorMap.SetMax(1)

	heatMap := plotter.NewHeatMap(corrGrid{corr: corr}, colorMap.Palette(255))
	heatMap.Min = -1
	heatMap.Max = 1
	p.Add(heatMap)

	n := len(corr.Columns)
	labels := make([]string, 0, n*n)
	positions := make(plotter.XYs, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			labels = append(labels, fmt.Sprintf("%.2f", corr.Matrix[r][c]))
			positions = append(positions, plotter.XY{X: float64(c) - 0.15, Y: float64(r)})
		}
	}
	annotations, err := plotter.NewLabels(plotter.XYLabels{XYs: positions, Labels: labels})
	if err != nil {
		return err
	}
	p.Add(annotations)

	p.NominalX(corr.Columns...)
	p.NominalY(corr.Columns...)

	return writePNG(w, p, 8*vg.Inch, 6*vg.Inch)
}
