// Package mssql implements a Microsoft SQL Server storage.Repository using
// go-mssqldb. SQL Server has no INSERT IGNORE, so the insert is guarded by a
// NOT EXISTS probe on the key columns.
package mssql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/microsoft/go-mssqldb"
	"github.com/microsoft/go-mssqldb/msdsn"

	"agrietl/internal/storage/sqldb"
)

// Config holds MSSQL repository configuration.
type Config struct {
	DSN string
}

// Repository is an MSSQL-backed implementation of storage.Repository.
type Repository struct {
	*sqldb.Repository
}

// NewRepository constructs a Repository and returns a Close function for cleanup.
func NewRepository(ctx context.Context, cfg Config) (*Repository, func(), error) {
	// Validate DSN early to fail fast on obvious mistakes.
	if _, err := msdsn.Parse(cfg.DSN); err != nil {
		return nil, nil, fmt.Errorf("mssql dsn: %w", err)
	}
	db, err := sql.Open("sqlserver", cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping: %w", err)
	}
	r := &Repository{Repository: sqldb.New(db, Dialect{})}
	return r, r.Repository.Close, nil
}

// Dialect renders T-SQL.
type Dialect struct{}

// Quote implements sqldb.Dialect. Dotted names are quoted per part so
// "dbo.crops" becomes [dbo].[crops].
func (Dialect) Quote(ident string) string {
	parts := strings.Split(ident, ".")
	for i, p := range parts {
		parts[i] = "[" + strings.ReplaceAll(p, "]", "]]") + "]"
	}
	return strings.Join(parts, ".")
}

// InsertIgnore implements sqldb.Dialect:
//
//	INSERT INTO t (a, b) SELECT @p1, @p2
//	WHERE NOT EXISTS (SELECT 1 FROM t WITH (UPDLOCK, HOLDLOCK) WHERE a = @p1)
//
// The lock hints hold the key range until commit so a concurrent loader
// cannot slip the same key in between the probe and the insert.
func (d Dialect) InsertIgnore(table string, columns, keyColumns []string) string {
	pos := make(map[string]int, len(columns))
	params := make([]string, len(columns))
	for i, c := range columns {
		pos[c] = i + 1
		params[i] = fmt.Sprintf("@p%d", i+1)
	}
	conds := make([]string, 0, len(keyColumns))
	for _, k := range keyColumns {
		conds = append(conds, fmt.Sprintf("%s = @p%d", d.Quote(k), pos[k]))
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) SELECT %s",
		d.Quote(table),
		strings.Join(sqldb.QuoteAll(d, columns), ", "),
		strings.Join(params, ", "),
	)
	if len(conds) > 0 {
		q += fmt.Sprintf(" WHERE NOT EXISTS (SELECT 1 FROM %s WITH (UPDLOCK, HOLDLOCK) WHERE %s)",
			d.Quote(table), strings.Join(conds, " AND "))
	}
	return q
}
