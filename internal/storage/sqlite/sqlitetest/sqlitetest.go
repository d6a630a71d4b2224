// Package sqlitetest provisions throwaway SQLite databases with the five
// destination tables for tests.
package sqlitetest

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"agrietl/internal/schema"
	"agrietl/internal/storage/sqlite"
)

// DDL returns the SQLite rendition of the provisioning script's tables.
func DDL() []string {
	facts := make([]string, 0, len(schema.FactColumns)+1)
	for _, c := range schema.FactColumns {
		switch c {
		case schema.ColDistCode:
			facts = append(facts, c+" INTEGER NOT NULL REFERENCES district_master(dist_code)")
		case schema.ColYear:
			facts = append(facts, c+" INTEGER NOT NULL")
		default:
			facts = append(facts, c+" REAL NOT NULL DEFAULT 0")
		}
	}
	facts = append(facts, "PRIMARY KEY (dist_code, year)")

	return []string{
		`CREATE TABLE IF NOT EXISTS state_master (state_code INTEGER PRIMARY KEY, state_name TEXT NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS district_master (dist_code INTEGER PRIMARY KEY, dist_name TEXT NOT NULL,
			state_code INTEGER NOT NULL REFERENCES state_master(state_code))`,
		`CREATE TABLE IF NOT EXISTS crops (crop_id INTEGER PRIMARY KEY AUTOINCREMENT, crop_name TEXT NOT NULL UNIQUE)`,
		`CREATE TABLE IF NOT EXISTS years (year INTEGER PRIMARY KEY)`,
		`CREATE TABLE IF NOT EXISTS agri_production (` + strings.Join(facts, ", ") + `)`,
	}
}

// TempPath returns a database file path inside tb.TempDir.
func TempPath(tb testing.TB) string {
	tb.Helper()
	return filepath.Join(tb.TempDir(), "agri.db")
}

// Open opens the SQLite database at path, creates the tables, and closes
// the repository when the test ends.
func Open(tb testing.TB, path string) *sqlite.Repository {
	tb.Helper()

	ctx := context.Background()
	r, closeFn, err := sqlite.NewRepository(ctx, sqlite.Config{DSN: path})
	if err != nil {
		tb.Fatalf("open sqlite %s: %v", path, err)
	}
	tb.Cleanup(closeFn)
	for _, ddl := range DDL() {
		if _, err := r.DB().ExecContext(ctx, ddl); err != nil {
			tb.Fatalf("provision: %v", err)
		}
	}
	return r
}

// Counts returns the row count of every destination table.
func Counts(tb testing.TB, r *sqlite.Repository) map[string]int64 {
	tb.Helper()

	out := make(map[string]int64)
	for _, tbl := range []string{schema.TableStates, schema.TableDistricts, schema.TableCrops, schema.TableYears, schema.TableFacts} {
		n, err := r.Count(context.Background(), tbl)
		if err != nil {
			tb.Fatalf("count %s: %v", tbl, err)
		}
		out[tbl] = n
	}
	return out
}
