package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-expense-keeper/internal/config"
	"github.com/MKhiriev/go-expense-keeper/internal/crypto"
	"github.com/MKhiriev/go-expense-keeper/internal/handler"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/server"
	"github.com/MKhiriev/go-expense-keeper/internal/service"
	"github.com/MKhiriev/go-expense-keeper/internal/store"
	"github.com/MKhiriev/go-expense-keeper/internal/workers"
	"github.com/MKhiriev/go-expense-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("expense-keeper-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	keyring, err := crypto.NewKeyringService(cfg.App.Secret)
	if err != nil {
		log.Fatal().Err(err).Msg("error deriving transport keys")
	}

	services, err := service.NewServices(storages, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, keyring, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(storages, srv.Health(), log).Run(ctx)

	srv.RunServer()
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
