package models

// Sheet is a named 2-D grid of cells. Rows may have different lengths.
type Sheet struct {
	// Name is the sheet name as it appears in the workbook.
	Name string `json:"name"`
	// Rows holds the grid, top to bottom (0-based).
	Rows [][]Cell `json:"rows"`
	// Range is the A1-style bounding box of non-empty cells ("" when blank).
	Range string `json:"range,omitempty"`
}

// Cell returns the cell at row r, column c, or an empty cell when the
// position lies outside the grid.
func (s Sheet) Cell(r, c int) Cell {
	if r < 0 || r >= len(s.Rows) {
		return EmptyCell()
	}
	return CellAt(s.Rows[r], c)
}

// CellAt returns row[c], or an empty cell when c is out of range.
func CellAt(row []Cell, c int) Cell {
	if c < 0 || c >= len(row) {
		return EmptyCell()
	}
	return row[c]
}
