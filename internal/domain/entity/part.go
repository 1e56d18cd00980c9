package entity

import "github.com/shopspring/decimal"

// Part entrada estática del catálogo de repuestos.
// El catálogo es fijo: el SKU es único y el costo unitario siempre es positivo.
type Part struct {
	SKU      string
	Name     string
	Category string
	UnitCost decimal.Decimal
}
