package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/sarychelek/kiosk/internal/client"
	"github.com/sarychelek/kiosk/internal/config"
	"github.com/sarychelek/kiosk/internal/logger"
	"github.com/sarychelek/kiosk/internal/service"
	"github.com/sarychelek/kiosk/internal/store"
	"github.com/sarychelek/kiosk/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// Optional local overrides; a missing .env is fine.
	_ = godotenv.Load()

	log := logger.NewKioskLogger("sary-chelek-kiosk")
	cfg, err := config.GetKioskConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create slot storage")
	}
	defer storages.Close()

	services := service.NewServices(storages, cfg.App, log)

	ui, err := tui.New(services, cfg.Gate, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app := client.NewApp(services, ui, log)
	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("kiosk run error")
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
