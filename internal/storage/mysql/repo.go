// Package mysql provides a MySQL-backed storage.Repository built on
// go-sql-driver/mysql. It is the default backend.
package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"agrietl/internal/storage/sqldb"
)

// Config holds MySQL repository configuration.
type Config struct {
	// DSN uses the go-sql-driver format, e.g.
	// "user:pass@tcp(localhost:3306)/Project2_Agri_India".
	DSN string
}

// Repository is a MySQL-backed implementation of storage.Repository.
type Repository struct {
	*sqldb.Repository
}

// NewRepository validates the DSN, opens a pool, and pings it. It returns
// the Repository and a Close function for cleanup.
func NewRepository(ctx context.Context, cfg Config) (*Repository, func(), error) {
	mc, err := mysql.ParseDSN(cfg.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("mysql dsn: %w", err)
	}
	// Fact rows carry ~70 parameters; keep prepared statements server-side.
	mc.InterpolateParams = false
	connector, err := mysql.NewConnector(mc)
	if err != nil {
		return nil, nil, fmt.Errorf("mysql connector: %w", err)
	}
	db := sql.OpenDB(connector)
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetMaxOpenConns(4)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("mysql ping: %w", err)
	}

	r := &Repository{Repository: sqldb.New(db, Dialect{})}
	return r, r.Repository.Close, nil
}

// Dialect renders MySQL SQL.
type Dialect struct{}

// Quote implements sqldb.Dialect.
func (Dialect) Quote(ident string) string {
	return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
}

// InsertIgnore implements sqldb.Dialect using INSERT IGNORE, which skips rows
// that collide with the primary key or a unique index.
func (d Dialect) InsertIgnore(table string, columns, _ []string) string {
	return fmt.Sprintf("INSERT IGNORE INTO %s (%s) VALUES (%s)",
		d.Quote(table),
		strings.Join(sqldb.QuoteAll(d, columns), ", "),
		sqldb.Placeholders("?", len(columns)),
	)
}
