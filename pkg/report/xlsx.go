package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Send Log"

// WriteXLSX exports the log as a spreadsheet, the artifact operators
// download after a run. Column layout matches Columns; row order is send
// order.
func (l *Log) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("report: failed to name sheet: %w", err)
	}

	if err := writeRow(f, 1, Columns); err != nil {
		return err
	}
	for i, row := range l.Rows() {
		if err := writeRow(f, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("report: failed to write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, rowNum int, cells []string) error {
	for i, v := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return fmt.Errorf("report: failed to address cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("report: failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}
