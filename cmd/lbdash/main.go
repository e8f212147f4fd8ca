package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/lb-dashboard/internal/client"
	"github.com/MKhiriev/lb-dashboard/internal/config"
	"github.com/MKhiriev/lb-dashboard/internal/logger"
	"github.com/MKhiriev/lb-dashboard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("lbdash", "info").Fatal().Err(err).Msg("error getting configs")
	}
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	cfg.Adapter.UserAgent = buildInfo.UserAgent()

	// the terminal belongs to the UI, so its logs go to a file
	log := logger.NewLogger("lbdash-"+cfg.Command, cfg.Log.Level)
	if cfg.Command == config.CommandTUI {
		log = logger.NewClientLogger("lbdash-tui", cfg.Log.Level)
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	app, err := client.NewApp(cfg, buildInfo, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Str("command", cfg.Command).Msg("run error")
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
