// Package console imprime los resúmenes del análisis como tablas de texto.
//
// Es un sink de solo lectura: recibe el Summaries ya construido y no recalcula
// ninguna columna. Los montos se agrupan por miles con golang.org/x/text.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/inventory-analyzer/internal/application/report"
)

// Printer renderiza los cinco resúmenes de consola.
type Printer struct {
	out      io.Writer
	num      *message.Printer // agrupación de miles (1,234,567)
	currency string
}

// NewPrinter construye el printer. currency es el prefijo de moneda (ej. "R").
func NewPrinter(out io.Writer, currency string) *Printer {
	return &Printer{
		out:      out,
		num:      message.NewPrinter(language.English),
		currency: currency,
	}
}

// PrintAll imprime los cinco resúmenes en el orden del reporte.
func (p *Printer) PrintAll(s *report.Summaries) {
	p.PrintKPISummary(s)
	p.PrintDemandBreakdown(s)
	p.PrintReorderAlerts(s)
	p.PrintBranchComparison(s)
	p.PrintDeadStockByCategory(s)
}

// PrintKPISummary indicadores de alto nivel.
func (p *Printer) PrintKPISummary(s *report.Summaries) {
	bar := strings.Repeat("═", 70)
	fmt.Fprintf(p.out, "\n%s\n", bar)
	fmt.Fprintln(p.out, "  INVENTORY & SLOW-MOVER ANALYZER — KPI SUMMARY")
	fmt.Fprintln(p.out, bar)
	fmt.Fprintf(p.out, "  Total SKU-Branch Records : %8s\n", p.count(s.KPI.TotalRecords))
	fmt.Fprintf(p.out, "  Total Stock Value        : %s %12s\n", p.currency, p.money(s.KPI.TotalStockValue))
	fmt.Fprintf(p.out, "  Slow-Moving Items        : %8s  (%s %s at risk)\n",
		p.count(s.KPI.SlowMovers), p.currency, p.money(s.KPI.DeadStockValue))
	fmt.Fprintf(p.out, "  Items Needing Reorder    : %8s\n", p.count(s.KPI.ReorderAlerts))
	fmt.Fprintf(p.out, "  Avg Inventory Turnover   : %7sx  (12-month)\n", s.KPI.AvgTurnover.StringFixed(1))
	fmt.Fprintln(p.out, bar)
}

// PrintDemandBreakdown desglose por clase de demanda.
func (p *Printer) PrintDemandBreakdown(s *report.Summaries) {
	fmt.Fprintln(p.out, "\n┌─────────────────────────────────────────────────────┐")
	fmt.Fprintln(p.out, "│  DEMAND CLASSIFICATION BREAKDOWN                    │")
	fmt.Fprintln(p.out, "├──────────────┬──────────┬────────────┬──────────────┤")
	fmt.Fprintln(p.out, "│ Class        │  Count   │  % of Total│  Stock Value │")
	fmt.Fprintln(p.out, "├──────────────┼──────────┼────────────┼──────────────┤")
	for _, row := range s.Demand {
		fmt.Fprintf(p.out, "│ %-12s │ %6d   │ %8.1f%%  │ %s %10s │\n",
			row.Class, row.Count, row.Percent, p.currency, p.money(row.StockValue))
	}
	fmt.Fprintln(p.out, "└──────────────┴──────────┴────────────┴──────────────┘")
}

// PrintReorderAlerts listado de reorden, lo más urgente primero.
func (p *Printer) PrintReorderAlerts(s *report.Summaries) {
	line := strings.Repeat("─", 110)
	fmt.Fprintf(p.out, "\n⚠  TOP %d REORDER ALERTS (sorted by days of stock remaining)\n", len(s.ReorderAlerts))
	fmt.Fprintln(p.out, line)
	fmt.Fprintf(p.out, "%-10s %-28s %-14s %6s %5s %6s %5s %6s %6s %7s\n",
		"SKU", "Part Name", "Branch", "Stock", "ROP", "Short", "Lead", "Daily", "Safety", "Order")
	fmt.Fprintln(p.out, line)
	for _, r := range s.ReorderAlerts {
		fmt.Fprintf(p.out, "%-10s %-28s %-14s %6d %5d %6s %5s %5.1f/d %6d %5d units\n",
			r.SKU, truncate(r.PartName, 27), r.Branch,
			r.CurrentStock, r.ReorderPoint, fmt.Sprintf("-%d", r.Shortfall),
			fmt.Sprintf("%dd", r.LeadTimeDays), r.DailySalesRate,
			r.SafetyStockUnits, r.SuggestedOrder)
	}
	fmt.Fprintln(p.out, line)
}

// PrintBranchComparison comparación entre sucursales, descendente por ventas.
func (p *Printer) PrintBranchComparison(s *report.Summaries) {
	fmt.Fprintln(p.out, "\n┌────────────────────────────────────────────────────────────────────────┐")
	fmt.Fprintln(p.out, "│  BRANCH PERFORMANCE COMPARISON                                         │")
	fmt.Fprintln(p.out, "├────────────────┬───────────┬──────────────┬────────┬─────────┬──────────┤")
	fmt.Fprintln(p.out, "│ Branch         │ 12M Sales │ Stock Value  │ Slow   │ Reorder │ Turnover │")
	fmt.Fprintln(p.out, "├────────────────┼───────────┼──────────────┼────────┼─────────┼──────────┤")
	for _, b := range s.Branches {
		fmt.Fprintf(p.out, "│ %-14s │ %9s │ %s %10s │ %5d  │ %6d  │ %6sx  │\n",
			b.Branch, p.count(b.TotalSales), p.currency, p.money(b.StockValue),
			b.SlowMovers, b.ReorderAlerts, b.AvgTurnover.StringFixed(1))
	}
	fmt.Fprintln(p.out, "└────────────────┴───────────┴──────────────┴────────┴─────────┴──────────┘")
}

// PrintDeadStockByCategory capital en riesgo por categoría (solo slow-movers).
func (p *Printer) PrintDeadStockByCategory(s *report.Summaries) {
	line := strings.Repeat("─", 60)
	fmt.Fprintln(p.out, "\n💀  DEAD STOCK ANALYSIS — Slow-Movers by Category")
	fmt.Fprintln(p.out, line)
	fmt.Fprintf(p.out, "%-16s %6s %14s %14s\n", "Category", "Count", "Total Value", "Avg Days Left")
	fmt.Fprintln(p.out, line)
	for _, row := range s.DeadStock {
		days := "∞"
		if !row.AllInfinite {
			days = fmt.Sprintf("%.0fd", row.AvgDaysLeft)
		}
		fmt.Fprintf(p.out, "%-16s %6d %s %12s %14s\n",
			row.Category, row.Count, p.currency, p.money(row.StockValue), days)
	}
	fmt.Fprintln(p.out, line)
	fmt.Fprintf(p.out, "%-16s %6d %s %12s\n",
		"TOTAL", s.KPI.SlowMovers, p.currency, p.money(s.KPI.DeadStockValue))
}

// money formatea un decimal sin centavos y con separador de miles.
func (p *Printer) money(d decimal.Decimal) string {
	return p.num.Sprintf("%d", d.Round(0).IntPart())
}

func (p *Printer) count(n int) string {
	return p.num.Sprintf("%d", n)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
