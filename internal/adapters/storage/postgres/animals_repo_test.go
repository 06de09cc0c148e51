package postgres

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"testing"
	"time"

	"african-animals/internal/adapters/storage/migrations"
	"african-animals/internal/adapters/storage/storagetest"
	"african-animals/internal/domain/animals"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB levanta Postgres en Docker; solo con TEST_INTEGRATION.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("skipping integration test: TEST_INTEGRATION not set")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		tcpostgres.WithDatabase("animals_test"),
		tcpostgres.WithUsername("animals"),
		tcpostgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	db, err := Open(ctx, dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestAnimalsRepo_Contract(t *testing.T) {
	db := setupTestDB(t)

	storagetest.RunRepositoryContract(t,
		func(t *testing.T) animals.Repository {
			repo := NewAnimalsRepo(db)
			if err := repo.DeleteAll(context.Background()); err != nil {
				t.Fatalf("reset: %v", err)
			}
			return repo
		},
		"not-a-uuid",
		"9b2f7a4e-8f6e-4b53-a8f4-3b0c8c6d9e11",
	)
}

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	db := setupTestDB(t)

	// Open ya migró una vez; una segunda pasada no debe fallar
	v, err := migrations.Up(context.Background(), db, migrations.Postgres)
	if err != nil {
		t.Fatalf("second migration run: %v", err)
	}
	if v < 1 {
		t.Fatalf("expected schema version >= 1, got %d", v)
	}

	var n int
	if err := db.QueryRowContext(context.Background(), `SELECT count(*) FROM animals`).Scan(&n); err != nil {
		t.Fatalf("animals table missing: %v", err)
	}
}

func TestParseID(t *testing.T) {
	got, err := parseID(" 9B2F7A4E-8F6E-4B53-A8F4-3B0C8C6D9E11 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "9b2f7a4e-8f6e-4b53-a8f4-3b0c8c6d9e11" {
		t.Fatalf("expected canonical uuid, got %q", got)
	}
	if _, err := parseID("42"); err == nil {
		t.Fatalf("expected error for non-uuid id")
	}
}

func TestAnimalsRepo_RowsAffectedErrorIsNotNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalsRepo(storagetest.OpenNoRowsAffectedDB(t))
	const id = "9b2f7a4e-8f6e-4b53-a8f4-3b0c8c6d9e11"

	err := repo.Replace(ctx, animals.Animal{ID: id, Species: "Lion"})
	if !errors.Is(err, storagetest.ErrRowsAffected) || errors.Is(err, animals.ErrNotFound) {
		t.Fatalf("replace: expected rows affected error, got %v", err)
	}

	err = repo.DeleteByID(ctx, id)
	if !errors.Is(err, storagetest.ErrRowsAffected) || errors.Is(err, animals.ErrNotFound) {
		t.Fatalf("delete: expected rows affected error, got %v", err)
	}
}
