// Package storage contains storage-agnostic contracts for the relational
// sink. Concrete backends (mysql, postgres, mssql, sqlite) live in
// subpackages and register a Factory at init time; callers open a
// Repository through New without importing any driver.
package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnsupportedKind is returned by New when no backend is registered for
// the requested kind.
var ErrUnsupportedKind = errors.New("unsupported storage.kind")

// Config selects and configures a backend.
type Config struct {
	// Kind selects the backend: "mysql", "postgres", "mssql", or "sqlite".
	Kind string

	// DSN is passed to the backend driver unchanged.
	DSN string
}

// Repository is a single logical connection to the target database. The
// load pipeline uses it serially: one open transaction at a time.
type Repository interface {
	// Begin opens a transaction. Each load stage is one transaction.
	Begin(ctx context.Context) (Tx, error)

	// Count returns the number of rows in table.
	Count(ctx context.Context, table string) (int64, error)

	// Close releases the underlying connection(s).
	Close()
}

// Tx is an open transaction.
type Tx interface {
	// InsertIgnore inserts one row and silently skips it when a row with the
	// same keyColumns already exists. It reports whether a row was written.
	// A failed InsertIgnore leaves the transaction usable for further rows.
	InsertIgnore(ctx context.Context, table string, columns, keyColumns []string, row []any) (bool, error)

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Factory constructs a Repository for a given Config.
type Factory func(ctx context.Context, cfg Config) (Repository, error)

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register registers (or replaces) the factory for kind. It is typically
// called from backend packages' init functions.
func Register(kind string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[kind] = f
}

// New opens a Repository using the factory registered for cfg.Kind.
func New(ctx context.Context, cfg Config) (Repository, error) {
	mu.RLock()
	f, ok := factories[cfg.Kind]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w=%s", ErrUnsupportedKind, cfg.Kind)
	}
	return f(ctx, cfg)
}

// ListKinds returns a sorted snapshot of the registered backend kinds.
func ListKinds() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
