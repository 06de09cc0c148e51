package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"african-animals/internal/adapters/storage/migrations"

	_ "github.com/mattn/go-sqlite3"
)

// PathFromURL acepta sqlite://<path> o file:<path>.
func PathFromURL(raw string) string {
	return strings.TrimPrefix(raw, "sqlite://")
}

// Open abre (o crea) el archivo SQLite y aplica las migraciones embebidas.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if !strings.HasPrefix(path, "file:") && path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	// un solo writer; evita "database is locked"
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	if _, err := migrations.Up(ctx, db, migrations.SQLite); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
