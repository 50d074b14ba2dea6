package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"smartcarbon/internal/domain"
	"smartcarbon/internal/emissions"
)

const (
	documentsSheet = "Documents"
	summarySheet   = "Summary"
)

// WriteXLSX builds a workbook with a Documents sheet and a per-category
// Summary sheet, returning the file bytes.
func WriteXLSX(docs []domain.ProcessedDocument, total float64) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// Rename the default sheet rather than leaving an empty Sheet1 behind.
	if err := f.SetSheetName(f.GetSheetName(0), documentsSheet); err != nil {
		return nil, fmt.Errorf("xlsx rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("xlsx new sheet: %w", err)
	}

	for i, h := range columns {
		if err := setCell(f, documentsSheet, i+1, 1, h); err != nil {
			return nil, err
		}
	}
	for r := range docs {
		d := &docs[r]
		row := r + 2
		values := []any{d.Date.String(), string(d.Type), d.Amount, d.Unit, d.Cost, d.Emissions}
		for c, v := range values {
			if err := setCell(f, documentsSheet, c+1, row, v); err != nil {
				return nil, err
			}
		}
	}

	if err := writeSummary(f, docs, total); err != nil {
		return nil, err
	}

	_ = f.SetColWidth(documentsSheet, "A", "A", 12)
	_ = f.SetColWidth(documentsSheet, "B", "B", 18)
	_ = f.SetColWidth(documentsSheet, "F", "F", 20)
	_ = f.SetColWidth(summarySheet, "A", "A", 22)

	idx, _ := f.GetSheetIndex(documentsSheet)
	f.SetActiveSheet(idx)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, docs []domain.ProcessedDocument, total float64) error {
	if err := setCell(f, summarySheet, 1, 1, "Category"); err != nil {
		return err
	}
	if err := setCell(f, summarySheet, 2, 1, "Emissions (kg CO2e)"); err != nil {
		return err
	}
	row := 2
	for _, ct := range emissions.CategoryTotals(docs) {
		if err := setCell(f, summarySheet, 1, row, string(ct.Category)); err != nil {
			return err
		}
		if err := setCell(f, summarySheet, 2, row, ct.Emissions); err != nil {
			return err
		}
		row++
	}
	if err := setCell(f, summarySheet, 1, row, "Total"); err != nil {
		return err
	}
	return setCell(f, summarySheet, 2, row, total)
}

func setCell(f *excelize.File, sheet string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("xlsx cell name: %w", err)
	}
	if err := f.SetCellValue(sheet, cell, v); err != nil {
		return fmt.Errorf("xlsx set %s!%s: %w", sheet, cell, err)
	}
	return nil
}
