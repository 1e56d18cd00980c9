package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-analyzer/internal/infrastructure/dataset"
)

var testBranches = []string{
	"Johannesburg", "Cape Town", "Durban", "Pretoria", "Bloemfontein", "Port Elizabeth",
}

func TestCatalog_CuarentaPartesUnicas(t *testing.T) {
	parts := dataset.Catalog()
	require.Len(t, parts, 40)

	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		assert.False(t, seen[p.SKU], "SKU duplicado en catálogo: %s", p.SKU)
		seen[p.SKU] = true
		assert.True(t, p.UnitCost.IsPositive(), "costo unitario de %s debe ser positivo", p.SKU)
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Category)
	}
}

func TestGenerate_DimensionYUnicidad(t *testing.T) {
	records := dataset.NewGenerator(42, testBranches).Generate()
	require.Len(t, records, 40*6, "exactamente un registro por combinación (SKU, sucursal)")

	type key struct{ sku, branch string }
	seen := make(map[key]bool, len(records))
	for _, r := range records {
		k := key{r.SKU, r.Branch}
		assert.False(t, seen[k], "combinación duplicada: %s / %s", r.SKU, r.Branch)
		seen[k] = true
	}
}

func TestGenerate_RangosYSumas(t *testing.T) {
	records := dataset.NewGenerator(42, testBranches).Generate()

	for _, r := range records {
		assert.GreaterOrEqual(t, r.AvgMonthlySales, 0)
		assert.Less(t, r.AvgMonthlySales, 120)

		sum := 0
		for _, units := range r.MonthlySales {
			assert.GreaterOrEqual(t, units, 0, "%s/%s: ventas mensuales no negativas", r.SKU, r.Branch)
			sum += units
		}
		assert.Equal(t, sum, r.TotalSold12M, "%s/%s: el total 12m es la suma exacta de los meses", r.SKU, r.Branch)

		assert.GreaterOrEqual(t, r.CurrentStock, 2)
		assert.Less(t, r.CurrentStock, r.AvgMonthlySales*4+5)

		assert.GreaterOrEqual(t, r.LeadTimeDays, 7)
		assert.LessOrEqual(t, r.LeadTimeDays, 27)
		assert.Equal(t, 7, r.SafetyStockDays)
	}
}

func TestGenerate_PerfilesDeterministas(t *testing.T) {
	// El perfil depende solo de los índices: (pi*7 + bi*13) mod 10.
	// pi=0, bi=0 → 0 → perfil alto; pi=1, bi=0 → 7 → perfil bajo.
	records := dataset.NewGenerator(42, testBranches).Generate()

	first := records[0] // pi=0, bi=0
	assert.GreaterOrEqual(t, first.AvgMonthlySales, 40, "seed_val 0 debe caer en perfil alto")

	second := records[6] // pi=1, bi=0
	assert.Less(t, second.AvgMonthlySales, 8, "seed_val 7 debe caer en perfil bajo")
}

func TestGenerate_MismaSemillaMismoDataset(t *testing.T) {
	a := dataset.NewGenerator(42, testBranches).Generate()
	b := dataset.NewGenerator(42, testBranches).Generate()
	assert.Equal(t, a, b, "misma semilla debe reproducir el dataset byte a byte")

	c := dataset.NewGenerator(7, testBranches).Generate()
	assert.NotEqual(t, a, c, "semillas distintas deben producir datasets distintos")
}
