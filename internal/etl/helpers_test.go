package etl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"agrietl/internal/datasource/file"
	csvparser "agrietl/internal/parser/csv"
	"agrietl/internal/schema"
	"agrietl/internal/storage/sqlite"
	"agrietl/internal/storage/sqlite/sqlitetest"
)

const sampleCSV = "testdata/agri_sample.csv"

func openStore(tb testing.TB, path string) *sqlite.Repository {
	return sqlitetest.Open(tb, path)
}

func tempDBPath(tb testing.TB) string {
	return sqlitetest.TempPath(tb)
}

func tableCounts(tb testing.TB, r *sqlite.Repository) map[string]int64 {
	return sqlitetest.Counts(tb, r)
}

// loadSample extracts and prepares the sample file.
func loadSample(tb testing.TB) *Dataset {
	tb.Helper()

	t, err := Extract(context.Background(), "test", file.NewLocal(sampleCSV), csvparser.Options{})
	require.NoError(tb, err)
	ds, err := Prepare("test", t, schema.PolicyWarn)
	require.NoError(tb, err)
	return ds
}
