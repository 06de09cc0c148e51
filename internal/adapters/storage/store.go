// Package storage elige y abre el backend de persistencia según DATABASE_URL.
package storage

import (
	"context"
	"fmt"
	"strings"

	"african-animals/internal/adapters/storage/memory"
	"african-animals/internal/adapters/storage/mongodb"
	"african-animals/internal/adapters/storage/postgres"
	"african-animals/internal/adapters/storage/sqlite"
	"african-animals/internal/config"
	"african-animals/internal/domain/animals"
	"african-animals/internal/platform/logger"
)

type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendMongo    Backend = "mongodb"
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"
)

// Store es el handle explícito de persistencia: se abre una vez en main
// y se cierra al apagar.
type Store struct {
	Animals animals.Repository
	Backend Backend

	closeFn func(ctx context.Context) error
}

func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.closeFn == nil {
		return nil
	}
	return s.closeFn(ctx)
}

// BackendFor deduce el backend a partir del esquema de la URL.
func BackendFor(databaseURL string) (Backend, error) {
	u := strings.TrimSpace(databaseURL)
	switch {
	case u == "":
		return BackendMemory, nil
	case strings.HasPrefix(u, "mongodb://"), strings.HasPrefix(u, "mongodb+srv://"):
		return BackendMongo, nil
	case strings.HasPrefix(u, "postgres://"), strings.HasPrefix(u, "postgresql://"):
		return BackendPostgres, nil
	case strings.HasPrefix(u, "sqlite://"), strings.HasPrefix(u, "file:"):
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("unsupported DATABASE_URL scheme: %q", redact(u))
	}
}

func Open(ctx context.Context, cfg config.Config, log logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.NewNop()
	}

	backend, err := BackendFor(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	log = log.With(map[string]any{"backend": string(backend)})

	switch backend {
	case BackendMongo:
		client, err := mongodb.Connect(ctx, cfg.DatabaseURL, log)
		if err != nil {
			return nil, err
		}
		return &Store{
			Animals: mongodb.NewAnimalsRepo(client, cfg.MongoDatabase, cfg.MongoCollection),
			Backend: backend,
			closeFn: func(ctx context.Context) error {
				log.Info("disconnecting from mongo", nil)
				return client.Disconnect(ctx)
			},
		}, nil

	case BackendPostgres:
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		log.Info("connected to postgres", nil)
		return &Store{
			Animals: postgres.NewAnimalsRepo(db),
			Backend: backend,
			closeFn: func(context.Context) error { return db.Close() },
		}, nil

	case BackendSQLite:
		path := sqlite.PathFromURL(cfg.DatabaseURL)
		db, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, err
		}
		log.Info("opened sqlite database", map[string]any{"path": path})
		return &Store{
			Animals: sqlite.NewAnimalsRepo(db),
			Backend: backend,
			closeFn: func(context.Context) error { return db.Close() },
		}, nil

	default:
		log.Warn("DATABASE_URL not set, using in-memory store (data is lost on restart)", nil)
		return &Store{
			Animals: memory.NewAnimalRepo(),
			Backend: BackendMemory,
		}, nil
	}
}

// redact oculta credenciales user:pass@ antes de loguear/reportar.
func redact(u string) string {
	at := strings.LastIndex(u, "@")
	scheme := strings.Index(u, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return u
	}
	return u[:scheme+3] + "***" + u[at:]
}
