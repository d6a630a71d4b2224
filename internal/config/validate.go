package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"agrietl/internal/schema"
	"agrietl/internal/storage"
)

// IssueSeverity represents the severity of a configuration issue.
type IssueSeverity string

const (
	// SeverityError blocks execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning is surfaced but does not block execution.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding. Path is the flag name.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// Validate performs static checks over c. It does not touch the filesystem
// or the network.
func Validate(c Config) []Issue {
	var issues []Issue
	add := func(sev IssueSeverity, path, format string, args ...any) {
		issues = append(issues, Issue{Severity: sev, Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(c.InputCSV) == "" {
		add(SeverityError, "input", "input path is required")
	}
	if c.Delimiter != "" && c.Delimiter != `\t` && c.Delimiter != "tab" && utf8.RuneCountInString(c.Delimiter) != 1 {
		add(SeverityError, "delimiter", "delimiter must be a single character, got %q", c.Delimiter)
	}
	if r := c.Comma(); r == '"' || r == '\r' || r == '\n' {
		add(SeverityError, "delimiter", "delimiter %q is not allowed", r)
	}

	// the accepted drivers are the storage backends linked into the binary
	if drivers := storage.ListKinds(); !contains(drivers, c.DBDriver) {
		add(SeverityError, "db-driver", "unsupported driver %q (want one of %s)", c.DBDriver, strings.Join(drivers, ", "))
	}
	if c.DSN == "" && c.DBDriver != "sqlite" {
		if c.DBHost == "" {
			add(SeverityError, "db-host", "host is required when --dsn is not set")
		}
		if c.DBPassword == "" {
			add(SeverityWarning, "db-password", "connecting without a password")
		}
	}
	if c.DSN == "" && strings.TrimSpace(c.DBName) == "" {
		add(SeverityError, "db-name", "database name is required when --dsn is not set")
	}

	if _, err := schema.ParsePolicy(c.ColumnPolicy); err != nil {
		add(SeverityError, "column-policy", "%v", err)
	}

	if c.ChartsDir == "" && c.ReportXLSX == "" {
		add(SeverityWarning, "charts-dir", "no chart directory or workbook configured; report output is discarded")
	}
	if c.ReportXLSX != "" && !strings.HasSuffix(strings.ToLower(c.ReportXLSX), ".xlsx") {
		add(SeverityWarning, "xlsx", "workbook path %q does not end in .xlsx", c.ReportXLSX)
	}
	if c.Concurrency < 1 {
		add(SeverityError, "concurrency", "must be at least 1, got %d", c.Concurrency)
	}

	switch c.MetricsBackend {
	case "", "none":
	case "prompush":
		if c.PushgatewayURL == "" {
			add(SeverityError, "pushgateway-url", "required when --metrics-backend=prompush")
		}
	case "datadog":
		if c.DogStatsDAddr == "" {
			add(SeverityError, "dogstatsd-addr", "required when --metrics-backend=datadog")
		}
	default:
		add(SeverityError, "metrics-backend", "unsupported backend %q (want none, prompush, or datadog)", c.MetricsBackend)
	}

	return issues
}

// HasErrors reports whether any issue has SeverityError.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
