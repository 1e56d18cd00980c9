package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
// El binario corre sin flags ni variables obligatorias: todos los valores tienen default.
type Config struct {
	App     AppConfig
	Dataset DatasetConfig
	Report  ReportConfig
	Export  ExportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DatasetConfig parámetros del dataset sintético.
// Branches y Months son configuración explícita (no estado global mutable);
// los defaults reproducen las 6 sucursales y los 12 meses del dataset de referencia.
type DatasetConfig struct {
	Seed     uint64   // semilla del PRNG; misma semilla => mismo dataset
	Branches []string // sucursales, en orden de generación
	Months   []string // abreviaturas Jan..Dec, en orden calendario
}

// ReportConfig configuración del reporte visual y de los resúmenes de consola.
type ReportConfig struct {
	PDFPath        string
	ReorderTopN    int    // filas del listado de alertas de reorden
	CurrencyPrefix string // prefijo de moneda en los renderizadores (ej. "R" = rand sudafricano)
	Palette        Palette
}

// Palette colores hex del reporte, por clase de demanda y acentos.
type Palette struct {
	HighDemand string
	Stable     string
	SlowMoving string
	Accent     string
	Warning    string
}

// ExportConfig configuración del export plano.
type ExportConfig struct {
	CSVPath string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DATASET_SEED, REPORT_PDF_PATH, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "inventory-analyzer"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Dataset: DatasetConfig{
			Seed: uint64(getInt(v, "DATASET_SEED", 42)),
			Branches: []string{
				"Johannesburg", "Cape Town", "Durban",
				"Pretoria", "Bloemfontein", "Port Elizabeth",
			},
			Months: []string{
				"Jan", "Feb", "Mar", "Apr", "May", "Jun",
				"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
			},
		},
		Report: ReportConfig{
			PDFPath:        getString(v, "REPORT_PDF_PATH", "inventory_report.pdf"),
			ReorderTopN:    getInt(v, "REORDER_TOP_N", 15),
			CurrencyPrefix: getString(v, "CURRENCY_PREFIX", "R"),
			Palette: Palette{
				HighDemand: "#10b981",
				Stable:     "#3b82f6",
				SlowMoving: "#ef4444",
				Accent:     "#f97316",
				Warning:    "#f59e0b",
			},
		},
		Export: ExportConfig{
			CSVPath: getString(v, "EXPORT_CSV_PATH", "inventory_dataset.csv"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
