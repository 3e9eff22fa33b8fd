package diagram

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Combinations"

// ExportMatrixSheet writes the factor matrix to an xlsx workbook: one row
// per combination, one column per primary load, a trailing total column.
// Absent loads are left blank.
func ExportMatrixSheet(data MatrixData, filename string) error {
	if len(data.Rows) == 0 {
		return fmt.Errorf("no combinations to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}

	header := append([]any{"LOAD COMB", "Section"}, namesAsCells(data.Loads)...)
	header = append(header, "Total")
	if err := setRow(f, 1, header); err != nil {
		return err
	}

	for i, r := range data.Rows {
		cells := []any{r.Number, r.Section}
		for _, factor := range r.Factors {
			if factor == 0 {
				cells = append(cells, nil)
				continue
			}
			cells = append(cells, factor)
		}
		cells = append(cells, r.Total())
		if err := setRow(f, i+2, cells); err != nil {
			return err
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return err
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if filepath.Ext(filename) != ".xlsx" {
		filename += ".xlsx"
	}
	return f.SaveAs(filename)
}

func setRow(f *excelize.File, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheetName, cell, &cells)
}

func namesAsCells(names []string) []any {
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}
