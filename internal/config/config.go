// Package config centralizes process configuration. Every tunable is a flag
// whose default is seeded from an environment variable, and the environment
// may itself be seeded from a .env file, so precedence is
// flag > environment > .env > built-in default.
//
// For tests, Bind keeps things hermetic:
//
//	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
//	cfg := config.Bind(fs, func(k string) string { return env[k] })
//	_ = fs.Parse([]string{"--db-driver=sqlite"})
package config

import (
	"errors"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config holds all process configuration. It is a plain value and safe to
// copy once flags are parsed.
type Config struct {
	// Input.
	InputCSV  string // path to the district-level statistics file
	Delimiter string // single-character field delimiter
	TrimSpace bool   // trim spaces around data cells

	// Database. DSN wins over the discrete parts when set.
	DBDriver   string // mysql, postgres, mssql, or sqlite
	DSN        string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Load behaviour.
	ColumnPolicy    string // warn or strict
	FailOnRowErrors bool   // exit non-zero when any row failed to insert

	// Reporting.
	ChartsDir   string // PNG output directory
	ReportXLSX  string // optional workbook path; empty disables it
	Concurrency int    // charts rendered at once

	// Metrics.
	MetricsBackend string // none, prompush, or datadog
	PushgatewayURL string
	DogStatsDAddr  string
	JobName        string
}

// Default values.
const (
	DefaultInputCSV = "ICRISAT-District Level Data.csv"
	DefaultDriver   = "mysql"
	DefaultDBName   = "Project2_Agri_India"
)

// Bind defines every flag on fs with a default taken from getenv and returns
// the Config the flags write into. Values are final once fs is parsed.
func Bind(fs *pflag.FlagSet, getenv func(string) string) *Config {
	cfg := &Config{}

	str := func(k, d string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return d
	}
	num := func(k string, d int) int {
		if v := getenv(k); v != "" {
			if i, err := strconv.Atoi(v); err == nil {
				return i
			}
		}
		return d
	}
	boolean := func(k string, d bool) bool {
		switch strings.ToLower(strings.TrimSpace(getenv(k))) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
		return d
	}

	fs.StringVarP(&cfg.InputCSV, "input", "i", str("INPUT_CSV", DefaultInputCSV), "path to the source CSV")
	fs.StringVar(&cfg.Delimiter, "delimiter", str("CSV_DELIMITER", ","), "CSV field delimiter")
	fs.BoolVar(&cfg.TrimSpace, "trim-space", boolean("CSV_TRIM_SPACE", true), "trim spaces around data cells")

	fs.StringVar(&cfg.DBDriver, "db-driver", str("DB_DRIVER", DefaultDriver), "database driver: mysql, postgres, mssql, or sqlite")
	fs.StringVar(&cfg.DSN, "dsn", getenv("DB_DSN"), "full DSN; overrides the discrete --db-* flags")
	fs.StringVar(&cfg.DBHost, "db-host", str("DB_HOST", "localhost"), "database host")
	fs.StringVar(&cfg.DBPort, "db-port", getenv("DB_PORT"), "database port (driver default when empty)")
	fs.StringVar(&cfg.DBUser, "db-user", str("DB_USER", "root"), "database user")
	fs.StringVar(&cfg.DBPassword, "db-password", getenv("DB_PASSWORD"), "database password")
	fs.StringVar(&cfg.DBName, "db-name", str("DB_NAME", DefaultDBName), "database name (file path for sqlite)")

	fs.StringVar(&cfg.ColumnPolicy, "column-policy", str("COLUMN_POLICY", "warn"), "column mismatch policy: warn or strict")
	fs.BoolVar(&cfg.FailOnRowErrors, "fail-on-row-errors", boolean("FAIL_ON_ROW_ERRORS", false), "exit non-zero when any row fails to insert")

	fs.StringVar(&cfg.ChartsDir, "charts-dir", str("CHARTS_DIR", "charts"), "directory for rendered PNG charts")
	fs.StringVar(&cfg.ReportXLSX, "xlsx", getenv("REPORT_XLSX"), "optional XLSX workbook of the charted series")
	fs.IntVar(&cfg.Concurrency, "concurrency", num("REPORT_CONCURRENCY", 4), "charts rendered concurrently")

	fs.StringVar(&cfg.MetricsBackend, "metrics-backend", str("METRICS_BACKEND", "none"), "metrics backend: none, prompush, or datadog")
	fs.StringVar(&cfg.PushgatewayURL, "pushgateway-url", getenv("PUSHGATEWAY_URL"), "Prometheus Pushgateway base URL")
	fs.StringVar(&cfg.DogStatsDAddr, "dogstatsd-addr", str("DOGSTATSD_ADDR", "127.0.0.1:8125"), "DogStatsD address")
	fs.StringVar(&cfg.JobName, "job", str("JOB_NAME", "agrietl"), "job name used to label metrics")

	return cfg
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Comma returns the delimiter as a rune, or ',' when Delimiter is empty.
// "\t" and "tab" both select a tab.
func (c Config) Comma() rune {
	switch c.Delimiter {
	case "":
		return ','
	case `\t`, "tab":
		return '\t'
	}
	return []rune(c.Delimiter)[0]
}
