package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveColumns_MasterPlan(t *testing.T) {
	cols := ResolveColumns(masterPlanHeader, ConventionMasterPlan)

	assert.Equal(t, ColumnMap{
		FieldStage:    0,
		FieldCode:     2,
		FieldName:     3,
		FieldQuantity: 4,
		FieldUnit:     6,
		FieldPrice:    7,
	}, cols)
}

func TestResolveColumns_BioEMS(t *testing.T) {
	cols := ResolveColumns(bioEMSHeader, ConventionBioEMS)

	assert.Equal(t, ColumnMap{
		FieldWeek:        0,
		FieldApplication: 1,
		FieldName:        2,
		FieldQuantity:    3,
		FieldPrice:       4,
	}, cols)
}

func TestResolveColumns_Rules(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		conv   Convention
		field  Field
		col    int
		found  bool
	}{
		{"leftmost match wins", []string{"x", "SEMANA", "TIPO"}, ConventionMasterPlan, FieldStage, 1, true},
		{"either stage label", []string{"x", "TIPO DE APLICACION"}, ConventionMasterPlan, FieldStage, 1, true},
		{"stage is case-sensitive", []string{"Semana"}, ConventionMasterPlan, FieldStage, 0, false},
		{"quantity /ha any case", []string{"DOSIS /HA"}, ConventionMasterPlan, FieldQuantity, 0, true},
		{"quantity needs /ha", []string{"DOSIS TOTAL"}, ConventionMasterPlan, FieldQuantity, 0, false},
		{"quantity needs DOSIS", []string{"KG /ha"}, ConventionMasterPlan, FieldQuantity, 0, false},
		{"labels are trimmed", []string{"  PRECIO  "}, ConventionMasterPlan, FieldPrice, 0, true},
		{"decomposed accent matches", []string{"CO\u0301DIGO"}, ConventionMasterPlan, FieldCode, 0, true},
		{"bioems /Ha is case-sensitive", []string{"Dosis /ha"}, ConventionBioEMS, FieldQuantity, 0, false},
		{"bioems price needs both words", []string{"Costo total", "Costo unitario"}, ConventionBioEMS, FieldPrice, 1, true},
		{"bioems has no unit column", []string{"Unidad"}, ConventionBioEMS, FieldUnit, 0, false},
		{"one column can serve two fields", []string{"SEMANA PRECIO"}, ConventionMasterPlan, FieldPrice, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := make([]any, len(tt.header))
			for i, h := range tt.header {
				header[i] = h
			}
			col, ok := ResolveColumns(row(header...), tt.conv).Lookup(tt.field)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.col, col)
			}
		})
	}
}

func TestHeaderLabels_NumericHeaders(t *testing.T) {
	labels := HeaderLabels(row(nil, 2024, " Semana "))
	assert.Equal(t, []string{"", "2024", "Semana"}, labels)
}

func TestColumnMap_Missing(t *testing.T) {
	cols := ColumnMap{FieldName: 1}
	assert.Equal(t, []Field{FieldStage}, cols.Missing([]Field{FieldStage, FieldName}))
	assert.Empty(t, cols.Missing([]Field{FieldName}))
}
