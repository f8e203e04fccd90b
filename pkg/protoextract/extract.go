package protoextract

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Javik0/protoextract-go/internal/logging"
	"github.com/Javik0/protoextract-go/pkg/protoextract/engine"
	"github.com/Javik0/protoextract-go/pkg/protoextract/models"
	"github.com/Javik0/protoextract-go/pkg/protoextract/parser"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Summary counts what a run produced.
type Summary struct {
	Sheets    int `json:"sheets"`
	Protocols int `json:"protocols"`
	Skipped   int `json:"skipped"`
	Products  int `json:"products"`
}

// Result is the outcome of a run.
type Result struct {
	RunID    string
	Document models.Document
	// Skipped lists the sheets that matched no convention, in workbook order.
	Skipped []*SheetError
	Summary Summary
}

// Extract reads the workbook at path and extracts its protocols and product
// catalog. Failing to read the workbook aborts the run; sheets that match
// no convention are skipped and reported in Result.Skipped.
func Extract(path string, opts Options) (*Result, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return extractFile(f, filepath.Base(path), opts)
}

// ExtractReader is like Extract but reads the workbook from r.
func ExtractReader(r io.Reader, bookName string, opts Options) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return extractFile(f, bookName, opts)
}

func extractFile(f *excelize.File, bookName string, opts Options) (*Result, error) {
	wb, err := parser.ReadWorkbook(f, bookName)
	if err != nil {
		return nil, fmt.Errorf("read workbook %s: %w", bookName, err)
	}
	return Process(wb, opts), nil
}

// Process runs the extraction over already-read sheet grids. Sheets are
// visited in order and the product catalog accumulates across all of them.
func Process(wb *models.Workbook, opts Options) *Result {
	res := &Result{
		RunID: uuid.NewString(),
		Document: models.Document{
			Protocols: make([]models.Protocol, 0),
		},
	}
	log := opts.logger().With(logging.RunID(res.RunID), logging.Book(wb.BookName))

	catalog := engine.NewCatalog()
	for _, sheet := range wb.Sheets {
		if !opts.ShouldProcess(sheet.Name) {
			log.Debug("sheet not selected", logging.Sheet(sheet.Name))
			continue
		}
		res.Summary.Sheets++

		var sr engine.SheetResult
		sr, catalog = engine.ProcessSheet(sheet, catalog)
		if sr.Protocol == nil {
			sheetErr := NewSheetError(sheet.Name, sr.Strategy.Convention, sr.Strategy.Err)
			res.Skipped = append(res.Skipped, sheetErr)
			log.Warn("skipping sheet",
				logging.Sheet(sheet.Name),
				logging.Convention(string(sr.Strategy.Convention)),
				zap.Error(sr.Strategy.Err))
			continue
		}

		res.Document.Protocols = append(res.Document.Protocols, *sr.Protocol)
		log.Debug("sheet processed",
			logging.Sheet(sheet.Name),
			logging.Range(sheet.Range),
			logging.Convention(string(sr.Strategy.Convention)),
			logging.Protocol(sr.Protocol.Name),
			zap.Int(logging.KeyStages, len(sr.Protocol.Stages)),
			zap.Int(logging.KeyEntries, sr.Entries))
	}

	res.Document.Products = catalog.Products()
	res.Summary.Protocols = len(res.Document.Protocols)
	res.Summary.Skipped = len(res.Skipped)
	res.Summary.Products = len(res.Document.Products)

	log.Info("extraction finished",
		zap.Int("sheets", res.Summary.Sheets),
		zap.Int("protocols", res.Summary.Protocols),
		zap.Int("skipped", res.Summary.Skipped),
		zap.Int(logging.KeyProducts, res.Summary.Products))

	return res
}
