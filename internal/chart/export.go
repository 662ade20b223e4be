package chart

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Export writes the cost curve to an image file. The format follows the
// file extension (png, svg or pdf).
func (cc *CostCurve) Export(filename string) error {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png", ".svg", ".pdf":
	default:
		return fmt.Errorf("unsupported format %q (use png, svg or pdf)", ext)
	}

	p := plot.New()
	p.Title.Text = "Partition Cost vs Hall Height"
	p.X.Label.Text = "Hall height (m)"
	p.Y.Label.Text = "Cost (PLN)"

	total, err := plotter.NewLine(xys(cc.Heights, cc.Total))
	if err != nil {
		return err
	}
	total.LineStyle.Width = vg.Points(2)
	total.LineStyle.Color = color.Black

	white, err := plotter.NewLine(xys(cc.Heights, cc.White))
	if err != nil {
		return err
	}
	white.LineStyle.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}

	gray, err := plotter.NewLine(xys(cc.Heights, cc.Gray))
	if err != nil {
		return err
	}
	gray.LineStyle.Color = color.RGBA{R: 128, G: 128, B: 128, A: 255}

	p.Add(total, white, gray)
	p.Legend.Add("total", total)
	p.Legend.Add("white wall", white)
	p.Legend.Add("gray wall", gray)
	p.Legend.Top = true

	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return pts
}
