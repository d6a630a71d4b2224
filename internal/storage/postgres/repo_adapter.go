// Package postgres registers its constructor with the storage factory at init
// time, so callers obtain a Repository via storage.New without importing this
// package directly.
package postgres

import (
	"context"

	"agrietl/internal/storage"
)

// newRepository is a test hook that points to NewRepository by default.
// Tests may replace this variable to avoid real DB connections.
var newRepository = NewRepository

// wrappedRepo implements storage.Repository by delegating to the concrete
// *postgres.Repository while providing a Close method that calls the close
// function returned by NewRepository.
type wrappedRepo struct {
	*Repository
	closeFn func()
}

// Ensure wrappedRepo satisfies storage.Repository at compile time.
var _ storage.Repository = (*wrappedRepo)(nil)

// Close implements storage.Repository.Close.
func (w *wrappedRepo) Close() {
	if w.closeFn != nil {
		w.closeFn()
	}
}

func init() {
	for _, kind := range []string{"postgres", "pgx"} {
		storage.Register(kind, func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
			r, closeFn, err := newRepository(ctx, Config{DSN: cfg.DSN})
			if err != nil {
				return nil, err
			}
			return &wrappedRepo{Repository: r, closeFn: closeFn}, nil
		})
	}
}
