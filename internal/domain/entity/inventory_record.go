package entity

import "github.com/shopspring/decimal"

// DemandClass clasificación de demanda de un registro.
type DemandClass string

const (
	DemandHigh   DemandClass = "High Demand" // >= 30 unidades promedio/mes
	DemandStable DemandClass = "Stable"      // 8..29
	DemandSlow   DemandClass = "Slow-Moving" // < 8
)

// DemandClasses orden fijo de presentación en resúmenes y reportes.
var DemandClasses = []DemandClass{DemandHigh, DemandStable, DemandSlow}

// MonthsPerYear meses de histórico de ventas por registro.
const MonthsPerYear = 12

// InventoryRecord una combinación Part × sucursal: la unidad de todo el análisis.
//
// Los campos de entrada los fija el generador y nunca se reescriben; los campos
// derivados los calcula el motor de analítica en una sola pasada de enriquecimiento.
// Después de enriquecer, el registro es de solo lectura para todos los consumidores.
type InventoryRecord struct {
	// Identidad
	SKU      string
	PartName string
	Category string
	Branch   string

	// Entradas (generadas)
	UnitCost        decimal.Decimal
	AvgMonthlySales int
	MonthlySales    [MonthsPerYear]int // Ene..Dic
	TotalSold12M    int                // suma exacta de MonthlySales
	CurrentStock    int
	LeadTimeDays    int
	SafetyStockDays int

	// Derivadas (calculadas, nunca regeneradas)
	DemandClass      DemandClass
	DailySalesRate   float64 // AvgMonthlySales / 30, sin redondear
	SafetyStockUnits int
	LeadTimeDemand   int
	ReorderPoint     int
	DaysOfStock      int // 9999 cuando DailySalesRate == 0 (centinela de "stock infinito")
	NeedsReorder     bool
	StockValue       decimal.Decimal
	Shortfall        int
	SuggestedOrder   int
	TurnoverRatio    decimal.Decimal // 12 meses, redondeado a 1 decimal
}
