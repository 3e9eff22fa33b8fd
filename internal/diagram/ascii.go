package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/loadcomb/internal/combo"
)

// Section is a titled batch of numbered combinations (STRENGTH, SERVICE)
type Section struct {
	Title string
	Batch combo.Batch
}

// Row is one numbered combination laid out against the load columns
type Row struct {
	Number  int
	Section string
	Factors []float64 // per load column, 0 when the load is absent
}

// Total returns the sum of the row's factors
func (r Row) Total() float64 {
	var sum float64
	for _, f := range r.Factors {
		sum += f
	}
	return sum
}

// MatrixData holds combinations against primary loads for drawing
type MatrixData struct {
	Loads []string // load names in current order
	Rows  []Row
}

// BuildMatrix lays out every record of the sections against the loads
func BuildMatrix(loads []combo.PrimaryLoad, sections ...Section) MatrixData {
	data := MatrixData{Loads: make([]string, len(loads))}
	for i, l := range loads {
		data.Loads[i] = l.Name
	}
	for _, s := range sections {
		for _, rec := range s.Batch.Records {
			row := Row{Number: rec.Number, Section: s.Title, Factors: make([]float64, len(loads))}
			for i, l := range loads {
				row.Factors[i] = rec.Combination[l.ID]
			}
			data.Rows = append(data.Rows, row)
		}
	}
	return data
}

// DrawFactorMatrix creates an ASCII grid with one row per combination and
// one column per primary load. Columns are headed by the 1-based load index.
func DrawFactorMatrix(data MatrixData) string {
	var sb strings.Builder

	if len(data.Rows) == 0 {
		sb.WriteString("  (no combinations)\n")
		return sb.String()
	}

	// Column widths
	numWidth := len("COMB")
	for _, r := range data.Rows {
		numWidth = max(numWidth, len(fmt.Sprint(r.Number)))
	}
	cells := make([][]string, len(data.Rows))
	colWidth := make([]int, len(data.Loads))
	for j := range data.Loads {
		colWidth[j] = len(fmt.Sprint(j + 1))
	}
	for i, r := range data.Rows {
		cells[i] = make([]string, len(r.Factors))
		for j, f := range r.Factors {
			if f != 0 {
				cells[i][j] = combo.FormatFactor(f)
			} else {
				cells[i][j] = "·"
			}
			colWidth[j] = max(colWidth[j], utf8.RuneCountInString(cells[i][j]))
		}
	}

	rule := func(left, mid, right string) {
		sb.WriteString("  " + left + strings.Repeat("─", numWidth+2))
		for _, w := range colWidth {
			sb.WriteString(mid + strings.Repeat("─", w+2))
		}
		sb.WriteString(right + "\n")
	}

	rule("┌", "┬", "┐")
	sb.WriteString(fmt.Sprintf("  │ %-*s ", numWidth, "COMB"))
	for j, w := range colWidth {
		sb.WriteString(fmt.Sprintf("│ %*d ", w, j+1))
	}
	sb.WriteString("│\n")

	section := ""
	for i, r := range data.Rows {
		if r.Section != section {
			rule("├", "┼", "┤")
			section = r.Section
		}
		sb.WriteString(fmt.Sprintf("  │ %*d ", numWidth, r.Number))
		for j, w := range colWidth {
			pad := w - utf8.RuneCountInString(cells[i][j])
			sb.WriteString("│ " + strings.Repeat(" ", pad) + cells[i][j] + " ")
		}
		sb.WriteString("│\n")
	}
	rule("└", "┴", "┘")

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	for j, name := range data.Loads {
		sb.WriteString(fmt.Sprintf("  %*d = %s\n", len(fmt.Sprint(len(data.Loads))), j+1, name))
	}
	sb.WriteString("  ·  = load not present\n")

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
