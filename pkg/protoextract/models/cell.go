// Package models defines data structures for protocol extraction.
package models

import (
	"math"
	"strconv"
	"strings"
)

// CellKind identifies what a grid cell holds.
type CellKind int

const (
	// CellEmpty is a blank cell.
	CellEmpty CellKind = iota
	// CellString is a text cell.
	CellString
	// CellNumber is a numeric cell.
	CellNumber
)

// Cell is a single untyped grid value as read from a sheet.
type Cell struct {
	// Kind is the value kind.
	Kind CellKind `json:"kind"`
	// Text is the textual form of the value (numbers use the shortest
	// representation that round-trips, e.g. "1" or "2.5").
	Text string `json:"text,omitempty"`
	// Number is the numeric value when Kind is CellNumber.
	Number float64 `json:"number,omitempty"`
}

// EmptyCell returns a blank cell.
func EmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

// StringCell returns a text cell. An empty string yields a blank cell.
func StringCell(s string) Cell {
	if s == "" {
		return EmptyCell()
	}
	return Cell{Kind: CellString, Text: s}
}

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell {
	return Cell{Kind: CellNumber, Text: strconv.FormatFloat(f, 'f', -1, 64), Number: f}
}

// ParseCell classifies a raw cell value: "" is empty, anything that parses
// as a finite number is numeric, everything else is text.
func ParseCell(raw string) Cell {
	if raw == "" {
		return EmptyCell()
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Cell{Kind: CellNumber, Text: raw, Number: f}
	}
	return Cell{Kind: CellString, Text: raw}
}

// IsBlank reports whether the cell is empty or holds only whitespace.
func (c Cell) IsBlank() bool {
	return c.Kind == CellEmpty || strings.TrimSpace(c.Text) == ""
}

// String returns the trimmed text of the cell.
func (c Cell) String() string {
	return strings.TrimSpace(c.Text)
}
