// Package export serializa el dataset enriquecido como archivo plano CSV.
//
// Una fila por registro, cabecera fija más una columna por mes (sales_jan..sales_dec).
// El archivo se arma completo en memoria y se escribe de una sola vez: un fallo
// de escritura nunca deja un archivo a medias reportado como éxito.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jhoicas/inventory-analyzer/internal/domain"
	"github.com/jhoicas/inventory-analyzer/internal/domain/entity"
)

// baseHeader columnas fijas, en el orden del formato de intercambio.
var baseHeader = []string{
	"sku", "part_name", "category", "branch", "unit_cost",
	"avg_monthly_sales", "total_sold_12m", "current_stock",
	"lead_time_days", "safety_stock_days", "demand_class",
	"daily_sales_rate", "safety_stock_units", "lead_time_demand",
	"reorder_point", "days_of_stock", "needs_reorder",
	"stock_value", "shortfall", "suggested_order", "turnover_ratio",
}

// CSVExporter exporta el dataset analizado.
type CSVExporter struct {
	months []string // abreviaturas Jan..Dec, definen las columnas mensuales
}

// NewCSVExporter construye el exportador.
func NewCSVExporter(months []string) *CSVExporter {
	return &CSVExporter{months: months}
}

// Header devuelve la cabecera completa (columnas fijas + sales_<mes>).
func (e *CSVExporter) Header() []string {
	header := make([]string, 0, len(baseHeader)+len(e.months))
	header = append(header, baseHeader...)
	for _, m := range e.months {
		header = append(header, "sales_"+strings.ToLower(m))
	}
	return header
}

// Marshal serializa los registros como CSV en memoria.
func (e *CSVExporter) Marshal(records []entity.InventoryRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, domain.ErrEmptyDataset
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(e.Header()); err != nil {
		return nil, fmt.Errorf("export: escribir cabecera: %w", err)
	}
	for _, r := range records {
		if err := w.Write(e.row(r)); err != nil {
			return nil, fmt.Errorf("export: escribir registro %s/%s: %w", r.SKU, r.Branch, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export: serializar CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// Export serializa y escribe el archivo en path.
func (e *CSVExporter) Export(records []entity.InventoryRecord, path string) error {
	if path == "" {
		return domain.ErrInvalidOutput
	}
	data, err := e.Marshal(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: escribir %s: %w", path, err)
	}
	return nil
}

func (e *CSVExporter) row(r entity.InventoryRecord) []string {
	row := make([]string, 0, len(baseHeader)+len(r.MonthlySales))
	row = append(row,
		r.SKU,
		r.PartName,
		r.Category,
		r.Branch,
		r.UnitCost.String(),
		strconv.Itoa(r.AvgMonthlySales),
		strconv.Itoa(r.TotalSold12M),
		strconv.Itoa(r.CurrentStock),
		strconv.Itoa(r.LeadTimeDays),
		strconv.Itoa(r.SafetyStockDays),
		string(r.DemandClass),
		strconv.FormatFloat(r.DailySalesRate, 'f', -1, 64),
		strconv.Itoa(r.SafetyStockUnits),
		strconv.Itoa(r.LeadTimeDemand),
		strconv.Itoa(r.ReorderPoint),
		strconv.Itoa(r.DaysOfStock),
		strconv.FormatBool(r.NeedsReorder),
		r.StockValue.String(),
		strconv.Itoa(r.Shortfall),
		strconv.Itoa(r.SuggestedOrder),
		r.TurnoverRatio.String(),
	)
	for _, units := range r.MonthlySales {
		row = append(row, strconv.Itoa(units))
	}
	return row
}
