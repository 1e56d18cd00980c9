package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-analyzer/pkg/config"
)

func TestLoad_DefaultsSinEntorno(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err, "la configuración debe cargar sin ninguna variable definida")

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, uint64(42), cfg.Dataset.Seed)
	assert.Len(t, cfg.Dataset.Branches, 6)
	assert.Len(t, cfg.Dataset.Months, 12)
	assert.Equal(t, "Jan", cfg.Dataset.Months[0])
	assert.Equal(t, "Dec", cfg.Dataset.Months[11])
	assert.Equal(t, "inventory_report.pdf", cfg.Report.PDFPath)
	assert.Equal(t, "inventory_dataset.csv", cfg.Export.CSVPath)
	assert.Equal(t, 15, cfg.Report.ReorderTopN)
	assert.Equal(t, "R", cfg.Report.CurrencyPrefix)
	assert.NotEmpty(t, cfg.Report.Palette.SlowMoving)
}

func TestLoad_OverridePorEntorno(t *testing.T) {
	t.Setenv("DATASET_SEED", "7")
	t.Setenv("REORDER_TOP_N", "20")
	t.Setenv("REPORT_PDF_PATH", "/tmp/report.pdf")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, uint64(7), cfg.Dataset.Seed)
	assert.Equal(t, 20, cfg.Report.ReorderTopN)
	assert.Equal(t, "/tmp/report.pdf", cfg.Report.PDFPath)
}
