package cli

import (
	"context"
	"fmt"
	"io"

	"african-animals/internal/adapters/storage"
	"african-animals/internal/config"
	"african-animals/internal/platform/logger"
)

// app es lo que cada comando necesita: config, logger y el store abierto.
type app struct {
	cfg   config.Config
	log   logger.Logger
	store *storage.Store
}

func bootstrap(ctx context.Context, envFile string, logOut io.Writer) (*app, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		Output: logOut,
	})

	st, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return &app{cfg: cfg, log: log, store: st}, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.store.Close(ctx); err != nil {
		a.log.Warn("closing store failed", map[string]any{"err": err})
	}
}
