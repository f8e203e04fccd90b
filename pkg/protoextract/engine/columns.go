// Package engine detects the layout of a sheet and normalizes its rows into
// protocols and catalog products.
package engine

import (
	"strings"

	"github.com/Javik0/protoextract-go/pkg/protoextract/models"
	"golang.org/x/text/unicode/norm"
)

// Convention identifies one of the recognized sheet layouts.
type Convention string

const (
	// ConventionMasterPlan is the fixed-header master plan layout.
	ConventionMasterPlan Convention = "master_plan"
	// ConventionBioEMS is the "Dosificación" sheet layout with a floating header.
	ConventionBioEMS Convention = "bioems_protocol"
)

// Field is a semantic column name.
type Field string

const (
	FieldStage       Field = "stage"
	FieldCode        Field = "code"
	FieldName        Field = "name"
	FieldQuantity    Field = "quantity"
	FieldUnit        Field = "unit"
	FieldPrice       Field = "price"
	FieldWeek        Field = "week"
	FieldApplication Field = "application"
)

// labelMatcher reports whether a header label identifies a field.
type labelMatcher func(label string) bool

func contains(sub string) labelMatcher {
	return func(label string) bool { return strings.Contains(label, sub) }
}

func containsFold(sub string) labelMatcher {
	sub = strings.ToLower(sub)
	return func(label string) bool { return strings.Contains(strings.ToLower(label), sub) }
}

func anyOf(ms ...labelMatcher) labelMatcher {
	return func(label string) bool {
		for _, m := range ms {
			if m(label) {
				return true
			}
		}
		return false
	}
}

func allOf(ms ...labelMatcher) labelMatcher {
	return func(label string) bool {
		for _, m := range ms {
			if !m(label) {
				return false
			}
		}
		return true
	}
}

// columnRule binds a field to the header labels that identify it.
type columnRule struct {
	Field Field
	Match labelMatcher
}

// columnRules is evaluated in order; within a rule the leftmost matching
// column wins. Matching is case-sensitive unless noted.
var columnRules = map[Convention][]columnRule{
	ConventionMasterPlan: {
		{FieldStage, anyOf(contains("SEMANA"), contains("TIPO"))},
		{FieldCode, contains("CÓDIGO")},
		{FieldName, contains("NOMBRE COMERCIAL")},
		{FieldQuantity, allOf(contains("DOSIS"), containsFold("/ha"))},
		{FieldUnit, contains("UNIDAD")},
		{FieldPrice, contains("PRECIO")},
	},
	ConventionBioEMS: {
		{FieldWeek, contains("Semana")},
		{FieldApplication, contains("Aplicación")},
		{FieldName, contains("Nombre comercial")},
		{FieldQuantity, allOf(contains("Dosis"), contains("/Ha"))},
		{FieldPrice, allOf(contains("Costo"), contains("unitario"))},
	},
}

// requiredFields lists the fields a convention cannot do without.
var requiredFields = map[Convention][]Field{
	ConventionMasterPlan: {FieldStage, FieldName},
	ConventionBioEMS:     {FieldName},
}

// ColumnMap maps resolved fields to 0-based column positions.
type ColumnMap map[Field]int

// Lookup returns the column of f and whether it resolved.
func (m ColumnMap) Lookup(f Field) (int, bool) {
	col, ok := m[f]
	return col, ok
}

// Missing returns the fields of fs that did not resolve, in the given order.
func (m ColumnMap) Missing(fs []Field) []Field {
	var missing []Field
	for _, f := range fs {
		if _, ok := m[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing
}

// Cell returns the row's cell for f, or an empty cell when f is unresolved.
func (m ColumnMap) Cell(row []models.Cell, f Field) models.Cell {
	col, ok := m[f]
	if !ok {
		return models.EmptyCell()
	}
	return models.CellAt(row, col)
}

// HeaderLabels coerces a header row to trimmed, NFC-normalized strings.
func HeaderLabels(row []models.Cell) []string {
	labels := make([]string, len(row))
	for i, c := range row {
		labels[i] = norm.NFC.String(c.String())
	}
	return labels
}

// ResolveColumns maps the fields of conv to positions in the header row.
// Fields with no matching label are absent from the result.
func ResolveColumns(header []models.Cell, conv Convention) ColumnMap {
	labels := HeaderLabels(header)
	cols := make(ColumnMap)
	for _, rule := range columnRules[conv] {
		for i, label := range labels {
			if rule.Match(label) {
				cols[rule.Field] = i
				break
			}
		}
	}
	return cols
}
