package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	scoreregistry "tally/contexts/scoring/score-registry"
	"tally/contexts/scoring/score-registry/adapters/memory"
	postgresadapter "tally/contexts/scoring/score-registry/adapters/postgres"
	"tally/internal/platform/config"
	"tally/internal/platform/db"
	"tally/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	var module scoreregistry.Module
	var pg *db.Postgres

	switch cfg.StoreBackend {
	case config.StoreBackendPostgres:
		if strings.TrimSpace(cfg.PostgresDSN) == "" {
			return nil, errors.New("POSTGRES_DSN is required for the postgres backend")
		}
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		repo := postgresadapter.NewRepository(pg.DB, logger)
		if err := repo.Migrate(); err != nil {
			_ = pg.Close()
			return nil, err
		}
		module = scoreregistry.NewModule(scoreregistry.Dependencies{
			State:       repo,
			Clock:       postgresadapter.SystemClock{},
			IDGenerator: postgresadapter.UUIDGenerator{},
			Logger:      logger,
		})
	default:
		module = scoreregistry.NewModule(scoreregistry.Dependencies{
			State:       memory.NewStore(),
			Clock:       memory.SystemClock{},
			IDGenerator: memory.UUIDGenerator{},
			Logger:      logger,
		})
	}

	server := httpserver.New(module, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
