package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteSheet stores rows into a new workbook at path, one string cell per
// value starting at A1. Used to produce schedule fixtures.
func WriteSheet(path, sheet string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()
	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return err
		}
	}
	for i, row := range rows {
		for j, v := range row {
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(sheet, cell, v); err != nil {
				return fmt.Errorf("set %s: %w", cell, err)
			}
		}
	}
	return f.SaveAs(path)
}
