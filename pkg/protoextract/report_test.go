package protoextract

import (
	"testing"

	"github.com/Javik0/protoextract-go/pkg/protoextract/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	reports := Classify(fixtureWorkbook(testFixtures), DefaultOptions())

	require.Len(t, reports, 3)

	bio := reports[0]
	assert.Equal(t, "bioems_protocol", bio.Strategy)
	assert.Equal(t, 2, bio.HeaderRow)
	assert.Equal(t, "C", bio.Columns[engine.FieldName])
	assert.Empty(t, bio.Reason)

	skipped := reports[1]
	assert.Equal(t, "skip", skipped.Strategy)
	assert.Equal(t, engine.ConventionMasterPlan, skipped.Convention)
	assert.Equal(t, 3, skipped.HeaderRow)
	assert.Contains(t, skipped.Reason, "required columns not found")

	plan := reports[2]
	assert.Equal(t, "master_plan", plan.Strategy)
	assert.Equal(t, "D", plan.Columns[engine.FieldName])
	assert.Equal(t, "E", plan.Columns[engine.FieldQuantity])
	assert.Equal(t, "G", plan.Columns[engine.FieldUnit])
}

func TestClassifyFile(t *testing.T) {
	path := writeFixtureFile(t, testFixtures)

	reports, err := ClassifyFile(path, Options{Sheets: []string{"Resumen"}})
	require.NoError(t, err)

	require.Len(t, reports, 1)
	assert.Equal(t, "Resumen", reports[0].SheetName)
	assert.Equal(t, "A1:D4", reports[0].Range)
}
