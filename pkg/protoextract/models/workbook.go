package models

// Workbook is the ordered sequence of sheets handed to the extractor.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets are kept in workbook enumeration order.
	Sheets []Sheet `json:"sheets"`
}
