package models

// ProtocolType distinguishes the layout a protocol was read from.
type ProtocolType string

const (
	// ProtocolStandard is produced from master plan sheets.
	ProtocolStandard ProtocolType = "Standard"
	// ProtocolBioEMS is produced from dosage ("Dosificación") sheets.
	ProtocolBioEMS ProtocolType = "BioEMS"
)

// Stage is a named group of products within a protocol.
type Stage struct {
	// Name is the stage label; it may be empty.
	Name string `json:"name"`
	// Products are kept in row order.
	Products []Product `json:"products"`
}

// Protocol is the dosage plan extracted from one sheet.
type Protocol struct {
	Name string       `json:"name"`
	Type ProtocolType `json:"type"`
	// Stages are ordered by first appearance in the sheet.
	Stages []Stage `json:"stages"`
}
