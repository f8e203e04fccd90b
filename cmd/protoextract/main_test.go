package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Javik0/protoextract-go/internal/config"
	"github.com/Javik0/protoextract-go/pkg/protoextract"
	"github.com/Javik0/protoextract-go/pkg/protoextract/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvOutput, config.EnvPretty, config.EnvLogLevel, config.EnvLogFormat} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", "Dosificación Finca1"))
	rows := [][]any{
		{"Semana", "Aplicación", "Nombre comercial", "Dosis (Kg,L)/Ha", "Costo unitario"},
		{1, "A", "Fert X", 2.5, 10},
		{"", "", "Total", 2.5, 10},
	}
	for r, values := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Dosificación Finca1", cell, &values))
	}
	_, err := f.NewSheet("Notas")
	require.NoError(t, err)
	require.NoError(t, f.SetCellValue("Notas", "A1", "sin datos"))

	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--env-file", ""))
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_Stdout(t *testing.T) {
	clearEnv(t)
	path := writeWorkbook(t)

	out, err := execute(t, path)
	require.NoError(t, err)

	var doc models.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Protocols, 1)
	assert.Equal(t, "Protocolo BioEMS Finca1", doc.Protocols[0].Name)
	assert.Len(t, doc.Products, 1)
}

func TestRun_OutputFiles(t *testing.T) {
	clearEnv(t)
	path := writeWorkbook(t)
	dir := t.TempDir()
	outFile := filepath.Join(dir, "extracted_data.json")
	protocolsDir := filepath.Join(dir, "protocols")

	out, err := execute(t, path, "-o", outFile, "--pretty", "--protocols-dir", protocolsDir)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"protocols\"")

	_, err = os.Stat(filepath.Join(protocolsDir, "Protocolo BioEMS Finca1.json"))
	assert.NoError(t, err)
}

func TestRun_MissingInput(t *testing.T) {
	clearEnv(t)

	_, err := execute(t, filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.ErrorIs(t, err, protoextract.ErrFileNotFound)
}

func TestSheets(t *testing.T) {
	clearEnv(t)
	path := writeWorkbook(t)

	out, err := execute(t, "sheets", path)
	require.NoError(t, err)

	var reports []protoextract.SheetReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 2)
	assert.Equal(t, "bioems_protocol", reports[0].Strategy)
	assert.Equal(t, "skip", reports[1].Strategy)
	assert.NotEmpty(t, reports[1].Reason)
}

func TestSheets_Selection(t *testing.T) {
	clearEnv(t)
	path := writeWorkbook(t)

	out, err := execute(t, "sheets", path, "--sheet", "Notas")
	require.NoError(t, err)

	var reports []protoextract.SheetReport
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "Notas", reports[0].SheetName)
}
