package main

import (
	"fmt"

	"github.com/MKhiriev/go-expense-keeper/internal/client"
	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("expense-keeper-client")

	app, err := client.NewApp(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
