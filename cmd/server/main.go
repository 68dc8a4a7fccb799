package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-map-places/internal/config"
	"github.com/MKhiriev/go-map-places/internal/handler"
	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/internal/server"
	"github.com/MKhiriev/go-map-places/internal/service"
	"github.com/MKhiriev/go-map-places/internal/store"
	"github.com/MKhiriev/go-map-places/internal/workers"
	"github.com/MKhiriev/go-map-places/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-map-places-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	if err = run(context.Background(), cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// run opens the database and hands the resulting storages to serve.
func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}

	if err = migrations.Migrate(db.DB); err != nil {
		closeDB(db, log)
		return fmt.Errorf("error applying migrations: %w", err)
	}

	storages, err := store.NewStorages(ctx, db, cfg.Storage, log)
	if err != nil {
		closeDB(db, log)
		return fmt.Errorf("error creating storages: %w", err)
	}

	return serve(storages, cfg, log)
}

// serve builds services, handlers and the server on top of storages and
// blocks until shutdown. storages is closed on every return path.
func serve(storages *store.Storages, cfg *config.StructuredConfig, log *logger.Logger) error {
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(storages, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
}

func closeDB(db *store.DB, log *logger.Logger) {
	if err := db.Close(); err != nil {
		log.Err(err).Msg("error closing database")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
