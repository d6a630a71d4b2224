package mysql

import (
	"context"
	"testing"

	"agrietl/internal/storage"
)

// TestMysqlStorageRegistrationUsesNewRepositoryHook verifies that the
// "mysql" backend registered in init() uses the newRepository hook and that
// wrappedRepo delegates Close.
func TestMysqlStorageRegistrationUsesNewRepositoryHook(t *testing.T) {
	ctx := context.Background()

	origNewRepository := newRepository
	defer func() { newRepository = origNewRepository }()

	var (
		called bool
		gotCfg Config
		closed bool

		fakeRepo = &Repository{}
	)

	newRepository = func(ctx context.Context, cfg Config) (*Repository, func(), error) {
		called = true
		gotCfg = cfg
		return fakeRepo, func() { closed = true }, nil
	}

	cfg := storage.Config{Kind: "mysql", DSN: "file:test.db?mode=memory"}

	repo, err := storage.New(ctx, cfg)
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	if !called {
		t.Fatalf("newRepository hook was not called")
	}
	if gotCfg.DSN != cfg.DSN {
		t.Errorf("hook cfg.DSN = %q, want %q", gotCfg.DSN, cfg.DSN)
	}

	w, ok := repo.(*wrappedRepo)
	if !ok {
		t.Fatalf("storage.New() type = %T, want *wrappedRepo", repo)
	}
	if w.Repository != fakeRepo {
		t.Fatalf("wrappedRepo.Repository = %p, want %p", w.Repository, fakeRepo)
	}

	repo.Close()
	if !closed {
		t.Fatalf("wrappedRepo.Close() did not invoke closeFn")
	}
}

func TestDialectInsertIgnore(t *testing.T) {
	t.Parallel()

	got := Dialect{}.InsertIgnore("crops", []string{"crop_name"}, []string{"crop_name"})
	want := "INSERT IGNORE INTO `crops` (`crop_name`) VALUES (?)"
	if got != want {
		t.Fatalf("InsertIgnore() = %q, want %q", got, want)
	}
}
