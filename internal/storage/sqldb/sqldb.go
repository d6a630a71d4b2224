// Package sqldb implements storage.Repository over database/sql. The mysql,
// mssql, and sqlite backends share it and differ only in their Dialect: how
// identifiers are quoted and how an insert-or-ignore statement is spelled.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"agrietl/internal/storage"
)

// Dialect renders backend-specific SQL.
type Dialect interface {
	// Quote quotes a single identifier.
	Quote(ident string) string

	// InsertIgnore returns a statement inserting one row of columns into
	// table that does nothing when keyColumns already match an existing row.
	// Placeholders are positional, one per column, in column order.
	InsertIgnore(table string, columns, keyColumns []string) string
}

// Repository is a database/sql-backed storage.Repository.
type Repository struct {
	db      *sql.DB
	dialect Dialect
}

var _ storage.Repository = (*Repository)(nil)

// New wraps an open *sql.DB. The Repository takes ownership of db and closes
// it in Close.
func New(db *sql.DB, d Dialect) *Repository {
	return &Repository{db: db, dialect: d}
}

// DB exposes the underlying handle (used by tests to seed schemas).
func (r *Repository) DB() *sql.DB { return r.db }

// Begin implements storage.Repository.
func (r *Repository) Begin(ctx context.Context) (storage.Tx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	return &Tx{tx: tx, dialect: r.dialect, stmts: map[string]*sql.Stmt{}}, nil
}

// Count implements storage.Repository.
func (r *Repository) Count(ctx context.Context, table string) (int64, error) {
	var n int64
	q := "SELECT COUNT(*) FROM " + r.dialect.Quote(table)
	if err := r.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// Close implements storage.Repository.
func (r *Repository) Close() {
	if r.db != nil {
		_ = r.db.Close()
	}
}

// Tx is a database/sql transaction with a per-statement cache; a stage
// inserts many rows through the same statement.
type Tx struct {
	tx      *sql.Tx
	dialect Dialect
	stmts   map[string]*sql.Stmt
}

// InsertIgnore implements storage.Tx.
func (t *Tx) InsertIgnore(ctx context.Context, table string, columns, keyColumns []string, row []any) (bool, error) {
	if len(row) != len(columns) {
		return false, fmt.Errorf("insert %s: row length %d != columns length %d", table, len(row), len(columns))
	}
	key := table + "\x1f" + strings.Join(columns, ",") + "\x1f" + strings.Join(keyColumns, ",")
	stmt, ok := t.stmts[key]
	if !ok {
		var err error
		stmt, err = t.tx.PrepareContext(ctx, t.dialect.InsertIgnore(table, columns, keyColumns))
		if err != nil {
			return false, fmt.Errorf("prepare insert %s: %w", table, err)
		}
		t.stmts[key] = stmt
	}
	res, err := stmt.ExecContext(ctx, row...)
	if err != nil {
		return false, fmt.Errorf("insert %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected %s: %w", table, err)
	}
	return n > 0, nil
}

// Commit implements storage.Tx.
func (t *Tx) Commit(context.Context) error {
	t.closeStmts()
	if err := t.tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Rollback implements storage.Tx.
func (t *Tx) Rollback(context.Context) error {
	t.closeStmts()
	if err := t.tx.Rollback(); err != nil && err != sql.ErrTxDone {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}

func (t *Tx) closeStmts() {
	for k, s := range t.stmts {
		_ = s.Close()
		delete(t.stmts, k)
	}
}

// Placeholders returns n copies of p joined by ", ".
func Placeholders(p string, n int) string {
	ps := make([]string, n)
	for i := range ps {
		ps[i] = p
	}
	return strings.Join(ps, ", ")
}

// QuoteAll applies d.Quote to every identifier.
func QuoteAll(d Dialect, idents []string) []string {
	out := make([]string, len(idents))
	for i, id := range idents {
		out[i] = d.Quote(id)
	}
	return out
}
