// Package pdf implementa el reporte visual multipágina del análisis de
// inventario usando Maroto v2.
//
// Estructura del documento (A4 apaisado):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  PÁGINA 1: Título + tiles KPI + clasificación de demanda    │
//	│            + mix categoría × clase                          │
//	│  PÁGINA 2: Tendencia mensual por clase + capital            │
//	│            inmovilizado (top slow-movers)                   │
//	│  PÁGINA 3: Fórmula ROP + top reorden (stock vs ROP)         │
//	│            + stock muerto por categoría                     │
//	│  PÁGINA 4: Comparación entre sucursales                     │
//	│  FOOTER:   run id + fecha de generación                     │
//	└─────────────────────────────────────────────────────────────┘
//
// Es un sink de solo lectura: todos los valores salen del Summaries ya
// construido; aquí solo se decide la forma, nunca se recalcula una cifra.
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/inventory-analyzer/internal/application/report"
	"github.com/jhoicas/inventory-analyzer/internal/domain/analytics"
	appconfig "github.com/jhoicas/inventory-analyzer/pkg/config"
)

var (
	colorText = &props.Color{Red: 30, Green: 41, Blue: 59}
	colorGray = &props.Color{Red: 107, Green: 114, Blue: 128}
	colorCard = &props.Color{Red: 241, Green: 245, Blue: 249}
)

// ReportGenerator genera el PDF del reporte visual.
type ReportGenerator struct {
	title    string
	currency string
	months   []string
	num      *message.Printer

	// Paleta resuelta desde la configuración (hex -> RGB).
	classColors [3]*props.Color // High Demand / Stable / Slow-Moving
	accent      *props.Color
	warning     *props.Color
}

// NewReportGenerator construye el generador a partir de la configuración del reporte.
func NewReportGenerator(cfg appconfig.ReportConfig, months []string) *ReportGenerator {
	return &ReportGenerator{
		title:    "INVENTORY & SLOW-MOVER ANALYZER",
		currency: cfg.CurrencyPrefix,
		months:   months,
		num:      message.NewPrinter(language.English),
		classColors: [3]*props.Color{
			hexColor(cfg.Palette.HighDemand),
			hexColor(cfg.Palette.Stable),
			hexColor(cfg.Palette.SlowMoving),
		},
		accent:  hexColor(cfg.Palette.Accent),
		warning: hexColor(cfg.Palette.Warning),
	}
}

// Generate produce los bytes del PDF, completos en memoria.
// El caller decide dónde y cómo escribirlos.
func (g *ReportGenerator) Generate(runID string, generatedAt time.Time, s *report.Summaries) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterFooter(g.footerRow(runID, generatedAt)); err != nil {
		return nil, fmt.Errorf("pdf: registrar footer: %w", err)
	}

	m.AddPages(
		g.overviewPage(s),
		g.trendsPage(s),
		g.reorderPage(s),
		g.branchesPage(s),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Página 1: título + KPIs + clasificación de demanda ────────────────────────

func (g *ReportGenerator) overviewPage(s *report.Summaries) core.Page {
	p := page.New()

	p.Add(
		row.New(14).Add(col.New(12).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 18, Align: align.Center, Color: colorText, Top: 1,
			}),
			text.New(g.num.Sprintf("40 SKUs · 6 Branches · %d Records · Mock Dataset", s.KPI.TotalRecords),
				props.Text{Size: 10, Align: align.Center, Color: colorGray, Top: 10}),
		)),
		line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}),
	)

	p.Add(g.kpiTilesRow(s))
	p.Add(line.NewRow(4))

	// Clasificación de demanda: participación por clase.
	p.Add(g.sectionTitleRow("Demand Classification"))
	p.Add(g.tableHeaderRow([]headerCell{
		{"Class", 4, align.Left}, {"Records", 2, align.Right},
		{"% of Total", 3, align.Right}, {"Stock Value", 3, align.Right},
	}))
	for i, d := range s.Demand {
		p.Add(row.New(6).Add(
			col.New(4).Add(text.New(string(d.Class), props.Text{
				Style: fontstyle.Bold, Size: 9, Color: g.classColors[i], Top: 1, Left: 1,
			})),
			col.New(2).Add(g.cellNum(g.num.Sprintf("%d", d.Count))),
			col.New(3).Add(g.cellNum(fmt.Sprintf("%.1f%%", d.Percent))),
			col.New(3).Add(g.cellNum(g.money(d.StockValue))),
		))
	}

	p.Add(line.NewRow(4))

	// Mix categoría × clase, de menor a mayor cantidad de registros.
	p.Add(g.sectionTitleRow("SKU Count by Category & Demand"))
	p.Add(g.tableHeaderRow([]headerCell{
		{"Category", 3, align.Left}, {"High Demand", 3, align.Right},
		{"Stable", 2, align.Right}, {"Slow-Moving", 2, align.Right}, {"Total", 2, align.Right},
	}))
	for _, c := range s.CategoryMix {
		p.Add(row.New(5).Add(
			col.New(3).Add(text.New(c.Category, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(g.cellNum(strconv.Itoa(c.Counts[0]))),
			col.New(2).Add(g.cellNum(strconv.Itoa(c.Counts[1]))),
			col.New(2).Add(g.cellNum(strconv.Itoa(c.Counts[2]))),
			col.New(2).Add(g.cellNum(strconv.Itoa(c.Total))),
		))
	}

	return p
}

// kpiTilesRow cinco tarjetas de indicadores, como la franja KPI del dashboard.
func (g *ReportGenerator) kpiTilesRow(s *report.Summaries) core.Row {
	tile := func(width int, label, value string, color *props.Color) core.Col {
		return col.New(width).Add(
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Center, Color: color, Top: 3,
			}),
			text.New(label, props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 12,
			}),
		).WithStyle(&props.Cell{BackgroundColor: colorCard})
	}

	return row.New(18).Add(
		tile(2, "TOTAL RECORDS", g.num.Sprintf("%d", s.KPI.TotalRecords), g.classColors[1]),
		tile(3, "STOCK VALUE", g.money(s.KPI.TotalStockValue), g.classColors[0]),
		tile(3, "SLOW-MOVERS", g.num.Sprintf("%d", s.KPI.SlowMovers), g.classColors[2]),
		tile(2, "NEED REORDER", g.num.Sprintf("%d", s.KPI.ReorderAlerts), g.warning),
		tile(2, "AVG TURNOVER", s.KPI.AvgTurnover.StringFixed(1)+"x", g.accent),
	)
}

// ── Página 2: tendencia mensual + capital inmovilizado ────────────────────────

func (g *ReportGenerator) trendsPage(s *report.Summaries) core.Page {
	p := page.New()

	p.Add(g.pageTitleRow("SALES TRENDS & VELOCITY ANALYSIS"))

	p.Add(g.sectionTitleRow("12-Month Sales Trend by Demand Category (units)"))
	monthCols := make([]core.Col, 0, len(g.months))
	for _, mName := range g.months {
		monthCols = append(monthCols, col.New(1).Add(text.New(mName, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: align.Center, Color: colorGray, Top: 1,
		})))
	}
	p.Add(row.New(5).Add(monthCols...))

	for i, t := range s.Trend {
		p.Add(row.New(5).Add(col.New(12).Add(text.New(string(t.Class), props.Text{
			Style: fontstyle.Bold, Size: 8, Color: g.classColors[i], Top: 1,
		}))))
		cols := make([]core.Col, 0, len(t.Totals))
		for _, units := range t.Totals {
			cols = append(cols, col.New(1).Add(text.New(g.num.Sprintf("%d", units), props.Text{
				Size: 7, Align: align.Center, Top: 1,
			})))
		}
		p.Add(row.New(5).Add(cols...))
	}

	p.Add(line.NewRow(6))

	// El equivalente tabular del scatter de velocidad: dónde está el capital
	// inmovilizado con menos rotación.
	p.Add(g.sectionTitleRow("Capital at Risk — Largest Slow-Moving Positions"))
	p.Add(g.tableHeaderRow([]headerCell{
		{"SKU", 2, align.Left}, {"Part", 4, align.Left}, {"Branch", 2, align.Left},
		{"Stock", 1, align.Right}, {"Days Left", 1, align.Right}, {"Stock Value", 2, align.Right},
	}))
	for _, r := range s.TopDeadStock {
		p.Add(row.New(5).Add(
			col.New(2).Add(text.New(r.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(r.PartName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(r.Branch, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(g.cellNum(strconv.Itoa(r.CurrentStock))),
			col.New(1).Add(g.cellNum(daysLabel(r.DaysOfStock))),
			col.New(2).Add(g.cellNum(g.money(r.StockValue))),
		))
	}

	return p
}

// ── Página 3: análisis de reorden ─────────────────────────────────────────────

func (g *ReportGenerator) reorderPage(s *report.Summaries) core.Page {
	p := page.New()

	p.Add(g.pageTitleRow("REORDER POINT ANALYSIS"))

	// Caja de fórmula, el corazón del cálculo.
	p.Add(row.New(14).Add(col.New(12).Add(
		text.New("Reorder Point  =  (Daily Sales Rate × Lead Time Days)  +  Safety Stock", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Center, Color: g.warning, Top: 2,
		}),
		text.New("Where:  Daily Rate = Avg Monthly / 30   |   Safety Stock = Daily Rate × 7 days", props.Text{
			Size: 8, Align: align.Center, Color: colorGray, Top: 9,
		}),
	).WithStyle(&props.Cell{BorderColor: g.warning, BorderType: border.Full})))

	p.Add(line.NewRow(4))

	p.Add(g.sectionTitleRow(fmt.Sprintf("Top %d Most Urgent Reorder Items (stock vs reorder point)", len(s.ReorderAlerts))))
	maxROP := 1
	for _, r := range s.ReorderAlerts {
		if r.ReorderPoint > maxROP {
			maxROP = r.ReorderPoint
		}
	}
	for _, r := range s.ReorderAlerts {
		label := fmt.Sprintf("%s (%s)", r.PartName, shortName(r.Branch, 3))
		p.Add(row.New(5).Add(append([]core.Col{
			col.New(4).Add(text.New(label, props.Text{Size: 7, Top: 1, Left: 1})),
		}, append(g.barCols(r.CurrentStock, maxROP, 6, g.accent),
			col.New(2).Add(text.New(fmt.Sprintf("%d / ROP %d", r.CurrentStock, r.ReorderPoint),
				props.Text{Size: 7, Align: align.Right, Top: 1, Right: 1})),
		)...)...))
	}

	p.Add(line.NewRow(4))

	p.Add(g.sectionTitleRow("Dead Stock Value at Risk — Slow-Movers by Category"))
	maxDead := decimal.NewFromInt(1)
	for _, d := range s.DeadStock {
		if d.StockValue.GreaterThan(maxDead) {
			maxDead = d.StockValue
		}
	}
	for _, d := range s.DeadStock {
		share := d.StockValue.Div(maxDead).InexactFloat64()
		p.Add(row.New(5).Add(append([]core.Col{
			col.New(3).Add(text.New(d.Category, props.Text{Size: 8, Top: 1, Left: 1})),
		}, append(g.shareBarCols(share, 6, g.classColors[2]),
			col.New(3).Add(g.cellNum(g.money(d.StockValue))),
		)...)...))
	}

	return p
}

// ── Página 4: comparación entre sucursales ────────────────────────────────────

func (g *ReportGenerator) branchesPage(s *report.Summaries) core.Page {
	p := page.New()

	p.Add(g.pageTitleRow("BRANCH PERFORMANCE COMPARISON"))

	p.Add(g.tableHeaderRow([]headerCell{
		{"Branch", 3, align.Left}, {"12M Sales", 2, align.Right},
		{"Stock Value", 3, align.Right}, {"Slow", 1, align.Right},
		{"Reorder", 1, align.Right}, {"Turnover", 2, align.Right},
	}))
	for _, b := range s.Branches {
		p.Add(row.New(6).Add(
			col.New(3).Add(text.New(b.Branch, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1, Left: 1,
			})),
			col.New(2).Add(g.cellNum(g.num.Sprintf("%d", b.TotalSales))),
			col.New(3).Add(g.cellNum(g.money(b.StockValue))),
			col.New(1).Add(g.cellNum(strconv.Itoa(b.SlowMovers))),
			col.New(1).Add(g.cellNum(strconv.Itoa(b.ReorderAlerts))),
			col.New(2).Add(g.cellNum(b.AvgTurnover.StringFixed(1)+"x")),
		))
	}

	p.Add(line.NewRow(6))

	// Barras de ventas 12m, descendentes, para ver la brecha entre sucursales.
	p.Add(g.sectionTitleRow("12-Month Sales Volume (units)"))
	maxSales := 1
	for _, b := range s.Branches {
		if b.TotalSales > maxSales {
			maxSales = b.TotalSales
		}
	}
	for _, b := range s.Branches {
		p.Add(row.New(6).Add(append([]core.Col{
			col.New(3).Add(text.New(b.Branch, props.Text{Size: 8, Top: 1, Left: 1})),
		}, append(g.barCols(b.TotalSales, maxSales, 7, g.classColors[1]),
			col.New(2).Add(g.cellNum(g.num.Sprintf("%d", b.TotalSales))),
		)...)...))
	}

	return p
}

// ── Helpers de composición ────────────────────────────────────────────────────

type headerCell struct {
	label string
	width int
	align align.Type
}

func (g *ReportGenerator) pageTitleRow(title string) core.Row {
	return row.New(12).Add(col.New(12).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 14, Align: align.Center, Color: colorText, Top: 2,
	})))
}

func (g *ReportGenerator) sectionTitleRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 10, Color: colorText, Top: 2,
	})))
}

func (g *ReportGenerator) tableHeaderRow(cells []headerCell) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.width).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Color: colorGray, Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorCard})
}

func (g *ReportGenerator) cellNum(value string) core.Component {
	return text.New(value, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})
}

// barCols barra horizontal de `width` columnas de grilla: la porción pintada es
// proporcional a value/max. Siempre pinta al menos una columna para que el valor
// no desaparezca del gráfico.
func (g *ReportGenerator) barCols(value, max, width int, color *props.Color) []core.Col {
	return g.shareBarCols(float64(value)/float64(max), width, color)
}

func (g *ReportGenerator) shareBarCols(share float64, width int, color *props.Color) []core.Col {
	if share > 1 {
		share = 1
	}
	filled := int(share*float64(width) + 0.5)
	if filled < 1 {
		filled = 1
	}
	if filled >= width {
		return []core.Col{col.New(width).WithStyle(&props.Cell{BackgroundColor: color})}
	}
	return []core.Col{
		col.New(filled).WithStyle(&props.Cell{BackgroundColor: color}),
		col.New(width - filled),
	}
}

func (g *ReportGenerator) footerRow(runID string, generatedAt time.Time) core.Row {
	return row.New(6).Add(col.New(12).Add(text.New(
		fmt.Sprintf("run %s · generated %s", runID, generatedAt.Format("2006-01-02 15:04:05")),
		props.Text{Size: 6.5, Align: align.Center, Color: colorGray, Top: 2},
	)))
}

func (g *ReportGenerator) money(d decimal.Decimal) string {
	return g.currency + " " + g.num.Sprintf("%d", d.Round(0).IntPart())
}

func daysLabel(days int) string {
	if days >= analytics.InfiniteDaysOfStock {
		return "∞"
	}
	return strconv.Itoa(days)
}

func shortName(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// hexColor convierte "#RRGGBB" a props.Color. Un hex inválido cae en gris.
func hexColor(hex string) *props.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return colorGray
	}
	r, err1 := strconv.ParseUint(hex[1:3], 16, 8)
	gr, err2 := strconv.ParseUint(hex[3:5], 16, 8)
	b, err3 := strconv.ParseUint(hex[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return colorGray
	}
	return &props.Color{Red: int(r), Green: int(gr), Blue: int(b)}
}
