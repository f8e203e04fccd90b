// Package protoextract extracts dosage protocols and a deduplicated product
// catalog from agronomic treatment workbooks.
package protoextract

import (
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// Options configures extraction behavior.
type Options struct {
	// Logger receives per-sheet diagnostics. If nil, logging is disabled.
	Logger *zap.Logger
	// Sheets restricts processing to the named sheets, in workbook order.
	// If empty, every sheet is processed.
	Sheets []string
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{}
}

// logger returns the configured logger or a no-op one.
func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// ShouldProcess returns whether the named sheet is selected.
func (o Options) ShouldProcess(sheetName string) bool {
	if len(o.Sheets) == 0 {
		return true
	}
	name := norm.NFC.String(sheetName)
	for _, s := range o.Sheets {
		if norm.NFC.String(s) == name {
			return true
		}
	}
	return false
}
