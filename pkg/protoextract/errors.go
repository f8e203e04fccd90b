package protoextract

import (
	"errors"
	"fmt"

	"github.com/Javik0/protoextract-go/pkg/protoextract/engine"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// SheetError records why a sheet was skipped.
type SheetError struct {
	SheetName  string
	Convention engine.Convention
	Err        error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q skipped (%s): %v", e.SheetName, e.Convention, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName string, conv engine.Convention, err error) *SheetError {
	return &SheetError{
		SheetName:  sheetName,
		Convention: conv,
		Err:        err,
	}
}
