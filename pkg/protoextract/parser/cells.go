// Package parser reads workbook sheets into untyped cell grids.
package parser

import (
	"fmt"

	"github.com/Javik0/protoextract-go/pkg/protoextract/models"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook reads every sheet of f, in workbook order.
// A sheet that cannot be read fails the whole workbook.
func ReadWorkbook(f *excelize.File, bookName string) (*models.Workbook, error) {
	wb := &models.Workbook{BookName: bookName}
	for _, sheetName := range f.GetSheetList() {
		sheet, err := ReadSheet(f, sheetName)
		if err != nil {
			return nil, err
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}
	return wb, nil
}

// ReadSheet extracts the cell grid of a sheet. Raw cell values are used so
// that number formats (currency, thousands separators) do not leak into
// numeric cells.
func ReadSheet(f *excelize.File, sheetName string) (models.Sheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Sheet{}, fmt.Errorf("get rows for sheet %q: %w", sheetName, err)
	}

	grid := make([][]models.Cell, len(rows))
	for rowIdx, row := range rows {
		cells := make([]models.Cell, len(row))
		for colIdx, cellValue := range row {
			cells[colIdx] = models.ParseCell(cellValue)
		}
		grid[rowIdx] = cells
	}

	return models.Sheet{
		Name:  sheetName,
		Rows:  grid,
		Range: DataRange(rows),
	}, nil
}
