// Package postgres implements a Postgres storage.Repository using pgx v5.
// Inserts use ON CONFLICT DO NOTHING; each row runs inside its own savepoint
// because a failed statement would otherwise abort the whole transaction.
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"agrietl/internal/storage"
)

// Config holds Postgres repository configuration.
type Config struct {
	DSN string // connection string for pgxpool
}

// Repository is a Postgres-backed implementation of storage.Repository.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository and returns a Close function for cleanup.
func NewRepository(ctx context.Context, cfg Config) (*Repository, func(), error) {
	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("pgxpool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("pgx ping: %w", err)
	}
	close := func() { pool.Close() }
	return &Repository{pool: pool}, close, nil
}

// Begin implements storage.Repository.
func (r *Repository) Begin(ctx context.Context) (storage.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return &Tx{tx: tx}, nil
}

// Count implements storage.Repository.
func (r *Repository) Count(ctx context.Context, table string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+pgFQN(table)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// Tx wraps a pgx transaction.
type Tx struct {
	tx pgx.Tx
}

// InsertIgnore implements storage.Tx.
func (t *Tx) InsertIgnore(ctx context.Context, table string, columns, keyColumns []string, row []any) (bool, error) {
	if len(row) != len(columns) {
		return false, fmt.Errorf("insert %s: row length %d != columns length %d", table, len(row), len(columns))
	}
	sp, err := t.tx.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("savepoint: %w", err)
	}
	tag, err := sp.Exec(ctx, insertIgnoreSQL(table, columns, keyColumns), row...)
	if err != nil {
		_ = sp.Rollback(ctx)
		return false, fmt.Errorf("insert %s: %w", table, err)
	}
	if err := sp.Commit(ctx); err != nil {
		return false, fmt.Errorf("release savepoint: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Commit implements storage.Tx.
func (t *Tx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Rollback implements storage.Tx.
func (t *Tx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}

// insertIgnoreSQL builds
//
//	INSERT INTO "t" ("a","b") VALUES ($1,$2) ON CONFLICT ("a") DO NOTHING
//
// With no key columns the conflict target is omitted and any unique
// violation is ignored.
func insertIgnoreSQL(table string, columns, keyColumns []string) string {
	ph := make([]string, len(columns))
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	target := ""
	if len(keyColumns) > 0 {
		target = " (" + strings.Join(mapIdent(keyColumns), ", ") + ")"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT%s DO NOTHING",
		pgFQN(table),
		strings.Join(mapIdent(columns), ", "),
		strings.Join(ph, ", "),
		target,
	)
}

// pgIdent quotes a Postgres identifier.
func pgIdent(id string) string { return `"` + strings.ReplaceAll(id, `"`, `""`) + `"` }

// pgFQN quotes a possibly schema-qualified name like "public.crops" to
// "public"."crops".
func pgFQN(name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = pgIdent(p)
	}
	return strings.Join(parts, ".")
}

// mapIdent maps a list of column names to their quoted forms.
func mapIdent(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = pgIdent(c)
	}
	return out
}
