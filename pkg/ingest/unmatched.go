package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/dmitrymomot/mailroom/pkg/match"
)

// WriteUnmatchedXLSX exports the documents that found no contact, one per
// row, as a downloadable worksheet the operator can chase up manually.
func WriteUnmatchedXLSX(results []match.Result, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Unmatched"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("ingest: failed to name sheet: %w", err)
	}
	if err := f.SetCellValue(sheet, "A1", "Unmatched Document"); err != nil {
		return fmt.Errorf("ingest: failed to write header: %w", err)
	}

	rowNum := 2
	for _, r := range results {
		if r.Matched() {
			continue
		}
		cellRef, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return fmt.Errorf("ingest: failed to address cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cellRef, r.DocumentID+".pdf"); err != nil {
			return fmt.Errorf("ingest: failed to write row: %w", err)
		}
		rowNum++
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("ingest: failed to write workbook: %w", err)
	}
	return nil
}
