package charts

import (
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

func writePNG(w io.Writer, p *plot.Plot, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
