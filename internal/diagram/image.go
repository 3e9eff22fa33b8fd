package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportTotalsChart writes a bar chart of the factor sum per combination.
// The format follows the file extension (png, svg, pdf); anything else is
// saved as png.
func ExportTotalsChart(data MatrixData, filename string) error {
	if len(data.Rows) == 0 {
		return fmt.Errorf("no combinations to chart")
	}

	p := plot.New()
	p.Title.Text = "Load Combinations"
	p.X.Label.Text = "LOAD COMB"
	p.Y.Label.Text = "Sum of factors"

	values := make(plotter.Values, len(data.Rows))
	labels := make([]string, len(data.Rows))
	for i, r := range data.Rows {
		values[i] = r.Total()
		labels[i] = fmt.Sprint(r.Number)
	}

	// Bar width shrinks with the number of combinations
	barWidth := vg.Points(20)
	if n := len(data.Rows); n > 20 {
		barWidth = vg.Points(max(2, 400/float64(n)))
	}

	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return err
	}
	bars.Color = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	bars.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(bars)
	p.NominalX(labels...)

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	width := 10 * vg.Inch
	height := 5 * vg.Inch

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
