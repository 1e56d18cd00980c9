// Command analyzer corre el pipeline completo de análisis de inventario:
//
//	generar dataset → enriquecer columnas → agregar resúmenes →
//	imprimir consola → renderizar PDF → exportar CSV
//
// Corre de punta a punta sin flags y termina con código 0 en éxito;
// cualquier fallo de escritura aborta la corrida con código distinto de 0.
package main

import (
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventory-analyzer/internal/application/report"
	"github.com/jhoicas/inventory-analyzer/internal/domain/analytics"
	"github.com/jhoicas/inventory-analyzer/internal/infrastructure/dataset"
	"github.com/jhoicas/inventory-analyzer/internal/infrastructure/export"
	"github.com/jhoicas/inventory-analyzer/internal/infrastructure/pdf"
	"github.com/jhoicas/inventory-analyzer/internal/interfaces/console"
	"github.com/jhoicas/inventory-analyzer/pkg/config"
	"github.com/jhoicas/inventory-analyzer/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	runID := uuid.NewString()
	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("run_id", runID).
		Uint64("seed", cfg.Dataset.Seed).
		Msg("iniciando análisis de inventario")

	start := time.Now()

	// 1. Dataset sintético: 40 SKUs × 6 sucursales, determinista por semilla.
	generator := dataset.NewGenerator(cfg.Dataset.Seed, cfg.Dataset.Branches)
	records := generator.Generate()
	log.Info().Int("records", len(records)).Msg("dataset generado")

	// 2. Columnas derivadas: una sola pasada de enriquecimiento.
	records = analytics.EnrichAll(records)

	// 3. Agregados compartidos por todos los sinks.
	summaries, err := report.Build(records, cfg.Report.ReorderTopN)
	if err != nil {
		log.Fatal().Err(err).Msg("construir resúmenes")
	}
	log.Info().
		Int("slow_movers", summaries.KPI.SlowMovers).
		Int("reorder_alerts", summaries.KPI.ReorderAlerts).
		Str("stock_value", summaries.KPI.TotalStockValue.StringFixed(2)).
		Msg("resúmenes calculados")

	// 4. Resúmenes por consola.
	console.NewPrinter(os.Stdout, cfg.Report.CurrencyPrefix).PrintAll(summaries)

	// 5. Reporte visual PDF.
	pdfGen := pdf.NewReportGenerator(cfg.Report, cfg.Dataset.Months)
	doc, err := pdfGen.Generate(runID, time.Now(), summaries)
	if err != nil {
		log.Fatal().Err(err).Msg("generar reporte PDF")
	}
	if err := os.WriteFile(cfg.Report.PDFPath, doc, 0o644); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Report.PDFPath).Msg("escribir reporte PDF")
	}
	log.Info().Str("path", cfg.Report.PDFPath).Int("bytes", len(doc)).Msg("reporte PDF guardado")

	// 6. Export plano del dataset analizado.
	exporter := export.NewCSVExporter(cfg.Dataset.Months)
	if err := exporter.Export(records, cfg.Export.CSVPath); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Export.CSVPath).Msg("exportar CSV")
	}
	log.Info().Str("path", cfg.Export.CSVPath).Int("records", len(records)).Msg("CSV exportado")

	log.Info().Dur("elapsed", time.Since(start)).Msg("análisis completado")
}
