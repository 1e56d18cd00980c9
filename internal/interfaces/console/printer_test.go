package console_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-analyzer/internal/application/report"
	"github.com/jhoicas/inventory-analyzer/internal/domain/analytics"
	"github.com/jhoicas/inventory-analyzer/internal/infrastructure/dataset"
	"github.com/jhoicas/inventory-analyzer/internal/interfaces/console"
)

func TestPrintAll_ContieneLosCincoResumenes(t *testing.T) {
	branches := []string{
		"Johannesburg", "Cape Town", "Durban", "Pretoria", "Bloemfontein", "Port Elizabeth",
	}
	records := analytics.EnrichAll(dataset.NewGenerator(42, branches).Generate())
	s, err := report.Build(records, 15)
	require.NoError(t, err)

	var buf bytes.Buffer
	console.NewPrinter(&buf, "R").PrintAll(s)
	out := buf.String()

	for _, want := range []string{
		"KPI SUMMARY",
		"DEMAND CLASSIFICATION BREAKDOWN",
		"REORDER ALERTS",
		"BRANCH PERFORMANCE COMPARISON",
		"DEAD STOCK ANALYSIS",
		"Slow-Moving",
		"Johannesburg",
	} {
		require.Contains(t, out, want)
	}

	// Las tablas van completas: una fila por sucursal.
	for _, b := range branches {
		require.Contains(t, out, b)
	}
	require.Equal(t, 1, strings.Count(out, "TOTAL"), "una sola línea de total en dead stock")
}
