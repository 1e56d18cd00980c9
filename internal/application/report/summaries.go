// Package report contiene el caso de uso de resúmenes agregados del análisis.
//
// Los sinks (consola, PDF, export) no recalculan nada: consumen de solo lectura
// el mismo Summaries construido una única vez sobre el dataset enriquecido.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-analyzer/internal/domain"
	"github.com/jhoicas/inventory-analyzer/internal/domain/analytics"
	"github.com/jhoicas/inventory-analyzer/internal/domain/entity"
)

// KPISummary indicadores de alto nivel de todo el dataset.
type KPISummary struct {
	TotalRecords    int
	TotalStockValue decimal.Decimal
	SlowMovers      int
	DeadStockValue  decimal.Decimal // capital en riesgo: valor de stock de los slow-movers
	ReorderAlerts   int
	AvgTurnover     decimal.Decimal // promedio simple, 1 decimal
}

// DemandRow fila del desglose por clase de demanda.
type DemandRow struct {
	Class      entity.DemandClass
	Count      int
	Percent    float64 // sobre el total de registros
	StockValue decimal.Decimal
}

// BranchRow fila de la comparación entre sucursales.
type BranchRow struct {
	Branch        string
	Records       int
	TotalSales    int // unidades vendidas en 12 meses
	StockValue    decimal.Decimal
	SlowMovers    int
	ReorderAlerts int
	AvgTurnover   decimal.Decimal
}

// DeadStockRow fila del análisis de stock muerto por categoría (solo slow-movers).
type DeadStockRow struct {
	Category    string
	Count       int
	StockValue  decimal.Decimal
	AvgDaysLeft float64 // promedio excluyendo el centinela 9999
	AllInfinite bool    // todos los registros de la categoría quedaron en el centinela
}

// TrendRow totales mensuales de unidades vendidas para una clase de demanda.
type TrendRow struct {
	Class  entity.DemandClass
	Totals [entity.MonthsPerYear]int
}

// CategoryMixRow conteo de registros por categoría, abierto por clase de demanda.
// Counts sigue el orden fijo de entity.DemandClasses.
type CategoryMixRow struct {
	Category string
	Counts   [3]int
	Total    int
}

// topDeadStockRows filas del widget de capital inmovilizado del reporte visual.
const topDeadStockRows = 8

// Summaries todos los agregados que consumen los sinks.
type Summaries struct {
	KPI           KPISummary
	Demand        []DemandRow   // en orden fijo High Demand / Stable / Slow-Moving
	ReorderAlerts []entity.InventoryRecord
	Branches      []BranchRow              // descendente por ventas 12m
	DeadStock     []DeadStockRow           // descendente por valor de stock
	Trend         []TrendRow               // mismo orden fijo de clases
	CategoryMix   []CategoryMixRow         // ascendente por total de registros
	TopDeadStock  []entity.InventoryRecord // slow-movers con más capital inmovilizado
}

// Build agrega el dataset enriquecido. topN limita el listado de alertas de
// reorden (ascendente por días de stock restantes: lo más urgente primero).
func Build(records []entity.InventoryRecord, topN int) (*Summaries, error) {
	if len(records) == 0 {
		return nil, domain.ErrEmptyDataset
	}
	if topN <= 0 {
		return nil, domain.ErrInvalidInput
	}

	s := &Summaries{
		KPI: KPISummary{
			TotalRecords:    len(records),
			TotalStockValue: decimal.Zero,
			DeadStockValue:  decimal.Zero,
		},
	}

	turnoverSum := decimal.Zero
	byClass := make(map[entity.DemandClass]*DemandRow, len(entity.DemandClasses))
	trend := make(map[entity.DemandClass]*TrendRow, len(entity.DemandClasses))
	for _, cls := range entity.DemandClasses {
		byClass[cls] = &DemandRow{Class: cls, StockValue: decimal.Zero}
		trend[cls] = &TrendRow{Class: cls}
	}
	byBranch := make(map[string]*BranchRow)
	branchTurnover := make(map[string]decimal.Decimal)
	byCategory := make(map[string]*deadStockAcc)
	mix := make(map[string]*CategoryMixRow)
	classIndex := make(map[entity.DemandClass]int, len(entity.DemandClasses))
	for i, cls := range entity.DemandClasses {
		classIndex[cls] = i
	}
	var slowMovers []entity.InventoryRecord

	for _, r := range records {
		s.KPI.TotalStockValue = s.KPI.TotalStockValue.Add(r.StockValue)
		turnoverSum = turnoverSum.Add(r.TurnoverRatio)

		row := byClass[r.DemandClass]
		row.Count++
		row.StockValue = row.StockValue.Add(r.StockValue)
		for m, units := range r.MonthlySales {
			trend[r.DemandClass].Totals[m] += units
		}

		b, ok := byBranch[r.Branch]
		if !ok {
			b = &BranchRow{Branch: r.Branch, StockValue: decimal.Zero}
			byBranch[r.Branch] = b
			branchTurnover[r.Branch] = decimal.Zero
		}
		b.Records++
		b.TotalSales += r.TotalSold12M
		b.StockValue = b.StockValue.Add(r.StockValue)
		branchTurnover[r.Branch] = branchTurnover[r.Branch].Add(r.TurnoverRatio)

		mrow, ok := mix[r.Category]
		if !ok {
			mrow = &CategoryMixRow{Category: r.Category}
			mix[r.Category] = mrow
		}
		mrow.Counts[classIndex[r.DemandClass]]++
		mrow.Total++

		if r.NeedsReorder {
			s.KPI.ReorderAlerts++
			b.ReorderAlerts++
			s.ReorderAlerts = append(s.ReorderAlerts, r)
		}

		if r.DemandClass == entity.DemandSlow {
			s.KPI.SlowMovers++
			s.KPI.DeadStockValue = s.KPI.DeadStockValue.Add(r.StockValue)
			b.SlowMovers++
			slowMovers = append(slowMovers, r)

			acc, ok := byCategory[r.Category]
			if !ok {
				acc = &deadStockAcc{value: decimal.Zero}
				byCategory[r.Category] = acc
			}
			acc.count++
			acc.value = acc.value.Add(r.StockValue)
			if r.DaysOfStock < analytics.InfiniteDaysOfStock {
				acc.daysSum += r.DaysOfStock
				acc.daysN++
			}
		}
	}

	n := decimal.NewFromInt(int64(len(records)))
	s.KPI.AvgTurnover = turnoverSum.Div(n).Round(1)

	for _, cls := range entity.DemandClasses {
		row := byClass[cls]
		row.Percent = float64(row.Count) / float64(len(records)) * 100
		s.Demand = append(s.Demand, *row)
		s.Trend = append(s.Trend, *trend[cls])
	}

	// Alertas: lo que menos días de stock le quedan, primero.
	sort.SliceStable(s.ReorderAlerts, func(i, j int) bool {
		return s.ReorderAlerts[i].DaysOfStock < s.ReorderAlerts[j].DaysOfStock
	})
	if len(s.ReorderAlerts) > topN {
		s.ReorderAlerts = s.ReorderAlerts[:topN]
	}

	for branch, b := range byBranch {
		b.AvgTurnover = branchTurnover[branch].Div(decimal.NewFromInt(int64(b.Records))).Round(1)
		s.Branches = append(s.Branches, *b)
	}
	// Desempate por nombre: las filas vienen de un map y sin clave secundaria
	// el orden de los empates cambiaría de corrida en corrida.
	sort.SliceStable(s.Branches, func(i, j int) bool {
		if s.Branches[i].TotalSales != s.Branches[j].TotalSales {
			return s.Branches[i].TotalSales > s.Branches[j].TotalSales
		}
		return s.Branches[i].Branch < s.Branches[j].Branch
	})

	for _, row := range mix {
		s.CategoryMix = append(s.CategoryMix, *row)
	}
	sort.SliceStable(s.CategoryMix, func(i, j int) bool {
		if s.CategoryMix[i].Total != s.CategoryMix[j].Total {
			return s.CategoryMix[i].Total < s.CategoryMix[j].Total
		}
		return s.CategoryMix[i].Category < s.CategoryMix[j].Category
	})

	sort.SliceStable(slowMovers, func(i, j int) bool {
		return slowMovers[i].StockValue.GreaterThan(slowMovers[j].StockValue)
	})
	if len(slowMovers) > topDeadStockRows {
		slowMovers = slowMovers[:topDeadStockRows]
	}
	s.TopDeadStock = slowMovers

	for category, acc := range byCategory {
		row := DeadStockRow{
			Category:    category,
			Count:       acc.count,
			StockValue:  acc.value,
			AllInfinite: acc.daysN == 0,
		}
		if acc.daysN > 0 {
			row.AvgDaysLeft = float64(acc.daysSum) / float64(acc.daysN)
		}
		s.DeadStock = append(s.DeadStock, row)
	}
	sort.SliceStable(s.DeadStock, func(i, j int) bool {
		if !s.DeadStock[i].StockValue.Equal(s.DeadStock[j].StockValue) {
			return s.DeadStock[i].StockValue.GreaterThan(s.DeadStock[j].StockValue)
		}
		return s.DeadStock[i].Category < s.DeadStock[j].Category
	})

	return s, nil
}

type deadStockAcc struct {
	count   int
	value   decimal.Decimal
	daysSum int
	daysN   int
}
