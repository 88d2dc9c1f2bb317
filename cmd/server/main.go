package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-resource-client/internal/config"
	handlerhttp "github.com/MKhiriev/go-resource-client/internal/handler/http"
	"github.com/MKhiriev/go-resource-client/internal/logger"
	"github.com/MKhiriev/go-resource-client/internal/server"
	"github.com/MKhiriev/go-resource-client/internal/service"
	"github.com/MKhiriev/go-resource-client/internal/store"
	"github.com/MKhiriev/go-resource-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	baseLog := logger.NewLogger("fixture-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		baseLog.Fatal().Err(err).Msg("error getting configs")
	}

	log, err := baseLog.WithLevel(cfg.Log.Level)
	if err != nil {
		baseLog.Fatal().Err(err).Msg("error setting log level")
	}
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := handlerhttp.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		_ = storages.Close()
		os.Exit(1)
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
