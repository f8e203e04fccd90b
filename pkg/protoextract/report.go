package protoextract

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Javik0/protoextract-go/pkg/protoextract/engine"
	"github.com/Javik0/protoextract-go/pkg/protoextract/models"
	"github.com/Javik0/protoextract-go/pkg/protoextract/parser"
	"github.com/xuri/excelize/v2"
)

// SheetReport describes how a sheet would be read, without extracting it.
type SheetReport struct {
	SheetName string `json:"sheet"`
	// Range is the non-empty data range of the sheet.
	Range      string            `json:"range,omitempty"`
	Convention engine.Convention `json:"convention"`
	Strategy   string            `json:"strategy"`
	// HeaderRow is the 1-based header row, or 0 when none was found.
	HeaderRow int `json:"header_row"`
	// Columns maps resolved fields to column letters.
	Columns map[engine.Field]string `json:"columns,omitempty"`
	Reason  string                  `json:"reason,omitempty"`
}

// Classify reports the layout chosen for every selected sheet.
func Classify(wb *models.Workbook, opts Options) []SheetReport {
	reports := make([]SheetReport, 0, len(wb.Sheets))
	for _, sheet := range wb.Sheets {
		if !opts.ShouldProcess(sheet.Name) {
			continue
		}
		reports = append(reports, newSheetReport(sheet, engine.Classify(sheet)))
	}
	return reports
}

// ClassifyFile opens the workbook at path and classifies its sheets.
func ClassifyFile(path string, opts Options) ([]SheetReport, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	wb, err := parser.ReadWorkbook(f, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("read workbook %s: %w", path, err)
	}
	return Classify(wb, opts), nil
}

func newSheetReport(sheet models.Sheet, st engine.Strategy) SheetReport {
	report := SheetReport{
		SheetName:  sheet.Name,
		Range:      sheet.Range,
		Convention: st.Convention,
		Strategy:   st.Kind.String(),
		HeaderRow:  st.HeaderRow + 1,
	}
	if st.Err != nil {
		report.Reason = st.Err.Error()
	}
	if len(st.Columns) > 0 {
		report.Columns = make(map[engine.Field]string, len(st.Columns))
		for field, col := range st.Columns {
			name, err := excelize.ColumnNumberToName(col + 1)
			if err != nil {
				continue
			}
			report.Columns[field] = name
		}
	}
	return report
}
