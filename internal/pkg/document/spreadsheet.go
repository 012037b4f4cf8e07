package document

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/domain/document"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const defaultSheetName = "Sheet1"

// Spreadsheet renders a single-sheet workbook with a bold header row.
func (r *Renderer) Spreadsheet(ctx context.Context, s document.Sheet) (document.Document, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := s.SheetName
	if sheetName == "" {
		sheetName = defaultSheetName
	}
	if sheetName != defaultSheetName {
		if err := f.SetSheetName(defaultSheetName, sheetName); err != nil {
			return document.Document{}, fmt.Errorf("rename sheet: %w", err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return document.Document{}, fmt.Errorf("create header style: %w", err)
	}

	for i, column := range s.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, column.Header); err != nil {
			return document.Document{}, fmt.Errorf("write header %q: %w", column.Header, err)
		}
		if column.Width > 0 {
			name, _ := excelize.ColumnNumberToName(i + 1)
			if err := f.SetColWidth(sheetName, name, name, column.Width); err != nil {
				return document.Document{}, fmt.Errorf("set width of column %s: %w", name, err)
			}
		}
	}
	if len(s.Columns) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(s.Columns), 1)
		if err := f.SetCellStyle(sheetName, "A1", last, headerStyle); err != nil {
			return document.Document{}, fmt.Errorf("style header row: %w", err)
		}
	}

	for i, row := range s.Rows {
		for j, value := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(sheetName, cell, cellValue(value)); err != nil {
				return document.Document{}, fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return document.Document{}, fmt.Errorf("write workbook: %w", err)
	}

	name := s.FileName
	if name == "" {
		name = "export.xlsx"
	}
	return document.Document{
		Name:        name,
		ContentType: document.ContentTypeXLSX,
		Body:        buf.Bytes(),
	}, nil
}

// cellValue stores decimals as numbers so the sheet can sum them.
func cellValue(v any) any {
	switch val := v.(type) {
	case decimal.Decimal:
		return val.InexactFloat64()
	case *decimal.Decimal:
		if val == nil {
			return ""
		}
		return val.InexactFloat64()
	default:
		return v
	}
}
