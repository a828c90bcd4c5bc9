package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Report"

// writeExcel renders the value as an .xlsx workbook. Array payloads
// become one row per item with the first item's flattened keys as
// columns; object payloads become Metric/Value rows.
func writeExcel(value Value, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if value.Kind == KindList {
		if err := writeExcelTable(f, value); err != nil {
			return err
		}
	} else {
		if err := writeExcelMetrics(f, value); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeExcelTable(f *excelize.File, value Value) error {
	if len(value.Items) == 0 {
		return nil
	}

	header := Flatten(value.Items[0], StyleExcel)
	for col, entry := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, entry.Key); err != nil {
			return err
		}
	}

	for row, item := range value.Items {
		entries := Flatten(item, StyleExcel)
		for col, entry := range entries {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, entry.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeExcelMetrics(f *excelize.File, value Value) error {
	if err := f.SetCellValue(sheetName, "A1", "Metric"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetName, "B1", "Value"); err != nil {
		return err
	}

	for i, entry := range Flatten(value, StyleExcel) {
		row := i + 2
		if err := f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), entry.Key); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), entry.Value); err != nil {
			return err
		}
	}
	return nil
}
