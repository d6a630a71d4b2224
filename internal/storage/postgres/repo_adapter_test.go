package postgres

import (
	"context"
	"testing"

	"agrietl/internal/storage"
)

// TestPostgresStorageRegistrationUsesNewRepositoryHook verifies that the
// "postgres" backend registered in init() uses the newRepository hook and that
// wrappedRepo delegates Close.
func TestPostgresStorageRegistrationUsesNewRepositoryHook(t *testing.T) {
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

	cfg := storage.Config{Kind: "postgres", DSN: "file:test.db?mode=memory"}

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

func TestInsertIgnoreSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		keys []string
		want string
	}{
		{
			name: "with conflict target",
			keys: []string{"dist_code", "year"},
			want: `INSERT INTO "public"."agri_production" ("dist_code", "year", "rice_area") VALUES ($1, $2, $3) ON CONFLICT ("dist_code", "year") DO NOTHING`,
		},
		{
			name: "without conflict target",
			want: `INSERT INTO "public"."agri_production" ("dist_code", "year", "rice_area") VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := insertIgnoreSQL("public.agri_production", []string{"dist_code", "year", "rice_area"}, tc.keys)
			if got != tc.want {
				t.Fatalf("insertIgnoreSQL() = %q, want %q", got, tc.want)
			}
		})
	}
}
