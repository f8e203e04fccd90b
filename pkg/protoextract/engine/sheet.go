package engine

import "github.com/Javik0/protoextract-go/pkg/protoextract/models"

// SheetResult is what one sheet contributed to a run.
type SheetResult struct {
	Strategy Strategy
	// Protocol is nil when the sheet was skipped.
	Protocol *models.Protocol
	// Entries is the number of product rows emitted.
	Entries int
}

// ProcessSheet classifies and normalizes one sheet, folds its products into
// catalog and returns the catalog for the next sheet.
func ProcessSheet(sheet models.Sheet, catalog *Catalog) (SheetResult, *Catalog) {
	st := Classify(sheet)
	if st.Kind == StrategySkip {
		return SheetResult{Strategy: st}, catalog
	}

	entries := Normalize(sheet, st)
	protocol := BuildProtocol(sheet.Name, st.Kind, entries)
	for _, e := range entries {
		catalog.Add(e.Product)
	}

	return SheetResult{
		Strategy: st,
		Protocol: &protocol,
		Entries:  len(entries),
	}, catalog
}
