// Package analytics implementa el motor de columnas derivadas de reposición
// (servicio de dominio, funciones puras sobre InventoryRecord).
//
// Fórmula central:
//
//	Reorder Point = (Tasa diaria × Lead Time) + Stock de seguridad
//
// donde Tasa diaria = promedio mensual / 30 y Stock de seguridad = tasa × 7 días.
package analytics

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-analyzer/internal/domain/entity"
)

// InfiniteDaysOfStock centinela para registros sin ventas: el stock actual
// nunca se agota, por lo que "días de stock" no tiene valor finito.
const InfiniteDaysOfStock = 9999

// daysPerMonth convención comercial para pasar de ventas mensuales a tasa diaria.
const daysPerMonth = 30

// Classify clasifica la demanda según el promedio mensual de ventas.
// Los umbrales son inclusivos por abajo: 30 ya es High Demand y 8 ya es Stable.
func Classify(avgMonthlySales int) entity.DemandClass {
	switch {
	case avgMonthlySales >= 30:
		return entity.DemandHigh
	case avgMonthlySales >= 8:
		return entity.DemandStable
	default:
		return entity.DemandSlow
	}
}

// Enrich calcula todas las columnas derivadas de un registro y devuelve la copia
// enriquecida. Es una función pura del propio registro: no hay dependencias entre
// registros y aplicarla dos veces produce exactamente el mismo resultado.
//
// El orden importa: campos posteriores dependen de anteriores dentro del mismo
// registro (ej. ReorderPoint = LeadTimeDemand + SafetyStockUnits).
func Enrich(r entity.InventoryRecord) entity.InventoryRecord {
	r.DemandClass = Classify(r.AvgMonthlySales)
	r.DailySalesRate = float64(r.AvgMonthlySales) / daysPerMonth

	r.SafetyStockUnits = int(math.Ceil(r.DailySalesRate * float64(r.SafetyStockDays)))
	r.LeadTimeDemand = int(math.Ceil(r.DailySalesRate * float64(r.LeadTimeDays)))
	r.ReorderPoint = r.LeadTimeDemand + r.SafetyStockUnits

	// Sin tasa de venta el stock dura "para siempre": centinela, no error.
	if r.DailySalesRate > 0 {
		r.DaysOfStock = int(math.Round(float64(r.CurrentStock) / r.DailySalesRate))
	} else {
		r.DaysOfStock = InfiniteDaysOfStock
	}

	r.NeedsReorder = r.CurrentStock <= r.ReorderPoint
	r.StockValue = r.UnitCost.Mul(decimal.NewFromInt(int64(r.CurrentStock)))

	r.Shortfall = r.ReorderPoint - r.CurrentStock
	if r.Shortfall < 0 {
		r.Shortfall = 0
	}
	// La orden sugerida cubre el faltante y como mínimo un mes de ventas.
	r.SuggestedOrder = r.Shortfall
	if r.AvgMonthlySales > r.SuggestedOrder {
		r.SuggestedOrder = r.AvgMonthlySales
	}

	// Rotación 12 meses = costo de lo vendido / valor del stock actual.
	// Con stock valorado en cero la rotación se define como 0, no como error.
	if r.StockValue.IsPositive() {
		sold := decimal.NewFromInt(int64(r.TotalSold12M)).Mul(r.UnitCost)
		r.TurnoverRatio = sold.Div(r.StockValue).Round(1)
	} else {
		r.TurnoverRatio = decimal.Zero
	}

	return r
}

// EnrichAll enriquece el dataset completo y devuelve un slice nuevo;
// el slice de entrada no se muta.
func EnrichAll(records []entity.InventoryRecord) []entity.InventoryRecord {
	out := make([]entity.InventoryRecord, len(records))
	for i, r := range records {
		out[i] = Enrich(r)
	}
	return out
}
