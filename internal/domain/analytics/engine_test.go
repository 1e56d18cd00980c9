package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-analyzer/internal/domain/analytics"
	"github.com/jhoicas/inventory-analyzer/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vector de referencia calculado a mano:
//
//	avg_monthly = 60  → tasa diaria = 60/30 = 2.0
//	safety      = ceil(2.0 × 7)  = 14
//	lead demand = ceil(2.0 × 10) = 20
//	ROP         = 20 + 14        = 34
//	stock = 20 ≤ 34 → reorden, faltante 14, orden sugerida max(14, 60) = 60
// ──────────────────────────────────────────────────────────────────────────────

func baseRecord() entity.InventoryRecord {
	return entity.InventoryRecord{
		SKU:             "SP-1001",
		PartName:        "Spark Plug – Iridium",
		Category:        "Engine",
		Branch:          "Durban",
		UnitCost:        decimal.RequireFromString("89.99"),
		AvgMonthlySales: 60,
		TotalSold12M:    720,
		CurrentStock:    20,
		LeadTimeDays:    10,
		SafetyStockDays: 7,
	}
}

func TestEnrich_VectorExacto(t *testing.T) {
	r := analytics.Enrich(baseRecord())

	assert.Equal(t, entity.DemandHigh, r.DemandClass)
	assert.InDelta(t, 2.0, r.DailySalesRate, 1e-9, "tasa diaria = 60/30")
	assert.Equal(t, 14, r.SafetyStockUnits)
	assert.Equal(t, 20, r.LeadTimeDemand)
	assert.Equal(t, 34, r.ReorderPoint, "ROP = lead time demand + safety stock")
	assert.True(t, r.NeedsReorder, "20 unidades ≤ ROP 34 debe disparar reorden")
	assert.Equal(t, 14, r.Shortfall)
	assert.Equal(t, 60, r.SuggestedOrder, "la orden sugerida cubre al menos un mes de ventas")
	assert.Equal(t, 10, r.DaysOfStock, "round(20 / 2.0)")
}

func TestEnrich_InvariantesEstructurales(t *testing.T) {
	// Los invariantes deben sostenerse para cualquier registro, no solo el vector.
	cases := []struct {
		name  string
		avg   int
		stock int
		lead  int
	}{
		{"alto con stock holgado", 95, 400, 21},
		{"estable justo en el umbral", 8, 15, 7},
		{"lento con poco stock", 3, 2, 27},
		{"sin ventas", 0, 4, 14},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := baseRecord()
			rec.AvgMonthlySales = tc.avg
			rec.CurrentStock = tc.stock
			rec.LeadTimeDays = tc.lead
			r := analytics.Enrich(rec)

			assert.Equal(t, r.LeadTimeDemand+r.SafetyStockUnits, r.ReorderPoint,
				"ROP siempre es la suma de demanda en lead time y stock de seguridad")
			assert.Equal(t, r.CurrentStock <= r.ReorderPoint, r.NeedsReorder)
			assert.True(t, r.StockValue.Equal(r.UnitCost.Mul(decimal.NewFromInt(int64(tc.stock)))),
				"valor de stock = stock × costo unitario")
			assert.GreaterOrEqual(t, r.Shortfall, 0)
			assert.GreaterOrEqual(t, r.SuggestedOrder, r.Shortfall)
			assert.GreaterOrEqual(t, r.SuggestedOrder, r.AvgMonthlySales)
		})
	}
}

func TestClassify_Umbrales(t *testing.T) {
	// Los límites son inclusivos por abajo: 8 y 30 ya pertenecen a la clase superior.
	assert.Equal(t, entity.DemandSlow, analytics.Classify(0))
	assert.Equal(t, entity.DemandSlow, analytics.Classify(5))
	assert.Equal(t, entity.DemandSlow, analytics.Classify(7))
	assert.Equal(t, entity.DemandStable, analytics.Classify(8))
	assert.Equal(t, entity.DemandStable, analytics.Classify(29))
	assert.Equal(t, entity.DemandHigh, analytics.Classify(30))
	assert.Equal(t, entity.DemandHigh, analytics.Classify(120))
}

func TestEnrich_SinVentas_Centinela(t *testing.T) {
	rec := baseRecord()
	rec.AvgMonthlySales = 0
	rec.TotalSold12M = 0
	r := analytics.Enrich(rec)

	assert.Zero(t, r.DailySalesRate)
	assert.Equal(t, analytics.InfiniteDaysOfStock, r.DaysOfStock,
		"sin tasa de venta el centinela debe ser exactamente 9999")
	assert.Equal(t, entity.DemandSlow, r.DemandClass)
	assert.Zero(t, r.SafetyStockUnits)
	assert.Zero(t, r.LeadTimeDemand)
	assert.Zero(t, r.ReorderPoint)
}

func TestEnrich_StockCero_RotacionCero(t *testing.T) {
	rec := baseRecord()
	rec.CurrentStock = 0
	r := analytics.Enrich(rec)

	assert.True(t, r.StockValue.IsZero())
	assert.True(t, r.TurnoverRatio.IsZero(),
		"con valor de stock cero la rotación se define como 0, no como división por cero")
	assert.True(t, r.NeedsReorder, "stock 0 siempre está en o bajo el ROP")
}

func TestEnrich_RotacionRedondeada(t *testing.T) {
	// 720 vendidas × costo / (20 × costo) = 36.0 exacto; el costo se cancela.
	r := analytics.Enrich(baseRecord())
	assert.True(t, decimal.RequireFromString("36").Equal(r.TurnoverRatio),
		"rotación = costo de lo vendido / valor de stock, a 1 decimal")

	// Caso con redondeo real: 100 vendidas, stock 3 → 33.333... → 33.3
	rec := baseRecord()
	rec.TotalSold12M = 100
	rec.CurrentStock = 3
	r = analytics.Enrich(rec)
	assert.True(t, decimal.RequireFromString("33.3").Equal(r.TurnoverRatio))
}

func TestEnrichAll_IdempotenteYNoMuta(t *testing.T) {
	in := []entity.InventoryRecord{baseRecord(), baseRecord()}
	in[1].AvgMonthlySales = 0
	in[1].TotalSold12M = 0

	once := analytics.EnrichAll(in)
	twice := analytics.EnrichAll(once)

	require.Len(t, once, 2)
	assert.Equal(t, once, twice, "enriquecer dos veces debe producir columnas idénticas")
	assert.Zero(t, in[0].ReorderPoint, "el slice de entrada no debe mutarse")
}
