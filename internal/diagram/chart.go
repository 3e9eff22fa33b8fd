package diagram

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// Totals returns the factor sum of every row, in row order
func (d MatrixData) Totals() []float64 {
	totals := make([]float64, len(d.Rows))
	for i, r := range d.Rows {
		totals[i] = r.Total()
	}
	return totals
}

// DrawTotalsChart plots the factor sum of each combination in the terminal
func DrawTotalsChart(data MatrixData) string {
	if len(data.Rows) == 0 {
		return "  (no combinations)\n"
	}

	series := data.Totals()
	// asciigraph needs two points to draw a line
	if len(series) == 1 {
		series = append(series, series[0])
	}

	first, last := data.Rows[0].Number, data.Rows[len(data.Rows)-1].Number
	return asciigraph.Plot(series,
		asciigraph.Height(12),
		asciigraph.Offset(4),
		asciigraph.Precision(2),
		asciigraph.Caption(fmt.Sprintf("Sum of factors, LOAD COMB %d to %d", first, last)),
	) + "\n"
}
