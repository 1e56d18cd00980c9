package export_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-analyzer/internal/domain"
	"github.com/jhoicas/inventory-analyzer/internal/domain/analytics"
	"github.com/jhoicas/inventory-analyzer/internal/infrastructure/dataset"
	"github.com/jhoicas/inventory-analyzer/internal/infrastructure/export"
)

var testMonths = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var testBranches = []string{
	"Johannesburg", "Cape Town", "Durban", "Pretoria", "Bloemfontein", "Port Elizabeth",
}

func TestHeader_OrdenDeColumnas(t *testing.T) {
	header := export.NewCSVExporter(testMonths).Header()
	require.Len(t, header, 33, "21 columnas fijas + 12 mensuales")

	assert.Equal(t, "sku", header[0])
	assert.Equal(t, "turnover_ratio", header[20])
	assert.Equal(t, "sales_jan", header[21])
	assert.Equal(t, "sales_dec", header[32])
}

func TestMarshal_UnaFilaPorRegistro(t *testing.T) {
	records := analytics.EnrichAll(dataset.NewGenerator(42, testBranches).Generate())
	data, err := export.NewCSVExporter(testMonths).Marshal(records)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 241, "cabecera + 240 registros")

	// Spot-check: la primera fila de datos corresponde al primer registro.
	first := records[0]
	row := rows[1]
	assert.Equal(t, first.SKU, row[0])
	assert.Equal(t, first.Branch, row[3])
	assert.Equal(t, first.UnitCost.String(), row[4])
	assert.Equal(t, strconv.Itoa(first.ReorderPoint), row[14])
	assert.Equal(t, strconv.FormatBool(first.NeedsReorder), row[16])
	assert.Equal(t, first.StockValue.String(), row[17])
	assert.Equal(t, strconv.Itoa(first.MonthlySales[0]), row[21])
	assert.Equal(t, strconv.Itoa(first.MonthlySales[11]), row[32])
}

func TestMarshal_DatasetVacio(t *testing.T) {
	_, err := export.NewCSVExporter(testMonths).Marshal(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}

func TestExport_EscribeElArchivo(t *testing.T) {
	records := analytics.EnrichAll(dataset.NewGenerator(42, testBranches).Generate())
	path := filepath.Join(t.TempDir(), "inventory_dataset.csv")

	require.NoError(t, export.NewCSVExporter(testMonths).Export(records, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestExport_RutaInvalida(t *testing.T) {
	records := analytics.EnrichAll(dataset.NewGenerator(42, testBranches).Generate())
	exporter := export.NewCSVExporter(testMonths)

	assert.ErrorIs(t, exporter.Export(records, ""), domain.ErrInvalidOutput)

	err := exporter.Export(records, filepath.Join(t.TempDir(), "no-existe", "out.csv"))
	assert.Error(t, err, "un directorio inexistente debe abortar con error, no éxito parcial")
}
