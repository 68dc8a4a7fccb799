package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-map-places/internal/adapter"
	"github.com/MKhiriev/go-map-places/internal/config"
	"github.com/MKhiriev/go-map-places/internal/logger"
	"github.com/MKhiriev/go-map-places/models"
	"github.com/goccy/go-json"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-map-places-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx := context.Background()

	err = serverAdapter.Login(ctx, models.LoginRequest{
		Email:    cfg.Credentials.Email,
		Password: cfg.Credentials.Password,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("login error")
	}

	markers, err := serverAdapter.Locations(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("fetch locations error")
	}
	log.Info().Int("markers", len(markers)).Msg("locations fetched")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(markers); err != nil {
		log.Fatal().Err(err).Msg("encode locations error")
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

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
