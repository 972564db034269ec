package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-accounts-service/internal/config"
	"github.com/MKhiriev/go-accounts-service/internal/handler"
	"github.com/MKhiriev/go-accounts-service/internal/logger"
	"github.com/MKhiriev/go-accounts-service/internal/server"
	"github.com/MKhiriev/go-accounts-service/internal/service"
	"github.com/MKhiriev/go-accounts-service/internal/store"
	"github.com/MKhiriev/go-accounts-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	bootLog := logger.NewLogger("accounts-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}
	if buildInfo.HasVersion() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log, err := logger.NewServerLogger("accounts-server", cfg.Log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error creating logger")
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Bool("force_https", cfg.Security.ForceHTTPS).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, cfg.Security, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	runErr := srv.RunServer()

	if err = storages.Close(); err != nil {
		log.Err(err).Msg("error closing storages")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("server run error")
	}

	log.Info().Msg("server stopped")
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
