package models

// Document is the extraction output handed to storage.
type Document struct {
	// Protocols holds one protocol per processed sheet, in workbook order.
	Protocols []Protocol `json:"protocols"`
	// Products is the deduplicated catalog in first-seen order.
	Products []Product `json:"products"`
}
