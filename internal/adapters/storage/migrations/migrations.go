// Package migrations aplica el esquema SQL embebido (goose) para los
// backends postgres y sqlite.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var files embed.FS

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite3"
)

func (d Dialect) dir() string {
	if d == SQLite {
		return "sqlite"
	}
	return "postgres"
}

// goose guarda dialecto y FS en variables globales
var mu sync.Mutex

// Up aplica las migraciones pendientes y devuelve la versión resultante.
func Up(ctx context.Context, db *sql.DB, d Dialect) (int64, error) {
	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(files)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(string(d)); err != nil {
		return 0, fmt.Errorf("goose dialect %s: %w", d, err)
	}
	if err := goose.UpContext(ctx, db, d.dir()); err != nil {
		return 0, fmt.Errorf("goose up (%s): %w", d, err)
	}

	v, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("goose version: %w", err)
	}
	return v, nil
}
