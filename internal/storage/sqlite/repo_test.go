package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(tb testing.TB) *Repository {
	tb.Helper()

	r, closeFn, err := NewRepository(context.Background(), Config{DSN: ":memory:"})
	require.NoError(tb, err)
	tb.Cleanup(closeFn)
	return r
}

func TestInsertIgnoreSkipsExistingKeys(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := openMemory(t)
	_, err := r.DB().ExecContext(ctx, `CREATE TABLE crops (crop_id INTEGER PRIMARY KEY AUTOINCREMENT, crop_name TEXT NOT NULL UNIQUE)`)
	require.NoError(t, err)

	cols := []string{"crop_name"}
	tx, err := r.Begin(ctx)
	require.NoError(t, err)

	inserted, err := tx.InsertIgnore(ctx, "crops", cols, cols, []any{"rice"})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = tx.InsertIgnore(ctx, "crops", cols, cols, []any{"rice"})
	require.NoError(t, err)
	assert.False(t, inserted, "duplicate key must be ignored")

	inserted, err = tx.InsertIgnore(ctx, "crops", cols, cols, []any{"wheat"})
	require.NoError(t, err)
	assert.True(t, inserted)
	require.NoError(t, tx.Commit(ctx))

	n, err := r.Count(ctx, "crops")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestInsertIgnoreFailureKeepsTxUsable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := openMemory(t)
	for _, ddl := range []string{
		`CREATE TABLE state_master (state_code INTEGER PRIMARY KEY, state_name TEXT NOT NULL)`,
		`CREATE TABLE district_master (dist_code INTEGER PRIMARY KEY, dist_name TEXT NOT NULL,
			state_code INTEGER NOT NULL REFERENCES state_master(state_code))`,
	} {
		_, err := r.DB().ExecContext(ctx, ddl)
		require.NoError(t, err)
	}

	dcols := []string{"dist_code", "dist_name", "state_code"}
	keys := []string{"dist_code"}
	tx, err := r.Begin(ctx)
	require.NoError(t, err)

	_, err = tx.InsertIgnore(ctx, "state_master", []string{"state_code", "state_name"}, []string{"state_code"}, []any{1, "Chhattisgarh"})
	require.NoError(t, err)

	_, err = tx.InsertIgnore(ctx, "district_master", dcols, keys, []any{1})
	require.Error(t, err, "row/column length mismatch")

	_, err = tx.InsertIgnore(ctx, "district_master", dcols, keys, []any{2, "Orphan", 99})
	require.Error(t, err, "unknown state must violate the foreign key")

	inserted, err := tx.InsertIgnore(ctx, "district_master", dcols, keys, []any{3, "Durg", 1})
	require.NoError(t, err)
	assert.True(t, inserted)
	require.NoError(t, tx.Commit(ctx))

	n, err := r.Count(ctx, "district_master")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestRollbackDiscardsRows(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := openMemory(t)
	_, err := r.DB().ExecContext(ctx, `CREATE TABLE years (year INTEGER PRIMARY KEY)`)
	require.NoError(t, err)

	tx, err := r.Begin(ctx)
	require.NoError(t, err)
	_, err = tx.InsertIgnore(ctx, "years", []string{"year"}, []string{"year"}, []any{2001})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback(ctx))

	n, err := r.Count(ctx, "years")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDialectInsertIgnore(t *testing.T) {
	t.Parallel()

	got := Dialect{}.InsertIgnore("state_master", []string{"state_code", "state_name"}, []string{"state_code"})
	assert.Equal(t, `INSERT OR IGNORE INTO "state_master" ("state_code", "state_name") VALUES (?, ?)`, got)
}
