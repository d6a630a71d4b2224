package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"agrietl/internal/storage"
	_ "agrietl/internal/storage/all"
)

func validConfig() Config {
	return Config{
		InputCSV:       "data.csv",
		Delimiter:      ",",
		DBDriver:       "mysql",
		DBHost:         "localhost",
		DBUser:         "root",
		DBPassword:     "secret",
		DBName:         DefaultDBName,
		ColumnPolicy:   "warn",
		ChartsDir:      "charts",
		Concurrency:    4,
		MetricsBackend: "none",
	}
}

func paths(issues []Issue, sev IssueSeverity) []string {
	var out []string
	for _, i := range issues {
		if i.Severity == sev {
			out = append(out, i.Path)
		}
	}
	return out
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mutate     func(*Config)
		wantErrors []string
		wantWarns  []string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing input", mutate: func(c *Config) { c.InputCSV = " " }, wantErrors: []string{"input"}},
		{name: "long delimiter", mutate: func(c *Config) { c.Delimiter = ";;" }, wantErrors: []string{"delimiter"}},
		{name: "quote delimiter", mutate: func(c *Config) { c.Delimiter = `"` }, wantErrors: []string{"delimiter"}},
		{name: "unknown driver", mutate: func(c *Config) { c.DBDriver = "oracle" }, wantErrors: []string{"db-driver"}},
		{name: "no password", mutate: func(c *Config) { c.DBPassword = "" }, wantWarns: []string{"db-password"}},
		{name: "sqlite needs no host", mutate: func(c *Config) { c.DBDriver = "sqlite"; c.DBHost = ""; c.DBPassword = "" }},
		{name: "bad policy", mutate: func(c *Config) { c.ColumnPolicy = "loose" }, wantErrors: []string{"column-policy"}},
		{name: "prompush without url", mutate: func(c *Config) { c.MetricsBackend = "prompush" }, wantErrors: []string{"pushgateway-url"}},
		{name: "unknown metrics", mutate: func(c *Config) { c.MetricsBackend = "graphite" }, wantErrors: []string{"metrics-backend"}},
		{name: "zero concurrency", mutate: func(c *Config) { c.Concurrency = 0 }, wantErrors: []string{"concurrency"}},
		{name: "odd workbook name", mutate: func(c *Config) { c.ReportXLSX = "out.csv" }, wantWarns: []string{"xlsx"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := validConfig()
			tc.mutate(&c)
			issues := Validate(c)
			assert.Equal(t, tc.wantErrors, paths(issues, SeverityError))
			assert.Equal(t, tc.wantWarns, paths(issues, SeverityWarning))
			assert.Equal(t, len(tc.wantErrors) > 0, HasErrors(issues))
		})
	}
}

func TestValidate_AcceptsEveryLinkedBackend(t *testing.T) {
	t.Parallel()

	kinds := storage.ListKinds()
	assert.ElementsMatch(t, []string{"mssql", "mysql", "pgx", "postgres", "sqlite"}, kinds)
	for _, k := range kinds {
		c := validConfig()
		c.DBDriver = k
		assert.NotContains(t, paths(Validate(c), SeverityError), "db-driver", k)
	}
}

func TestIssueError(t *testing.T) {
	t.Parallel()

	i := Issue{Severity: SeverityError, Path: "db-driver", Message: "unsupported"}
	assert.Equal(t, "error at db-driver: unsupported", i.Error())
}
