package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/afero"

	"github.com/MKhiriev/go-cloud-keeper/internal/app"
	"github.com/MKhiriev/go-cloud-keeper/internal/client"
	"github.com/MKhiriev/go-cloud-keeper/internal/config"
	"github.com/MKhiriev/go-cloud-keeper/internal/crypto"
	"github.com/MKhiriev/go-cloud-keeper/internal/localsync"
	"github.com/MKhiriev/go-cloud-keeper/internal/logger"
	"github.com/MKhiriev/go-cloud-keeper/internal/service"
	"github.com/MKhiriev/go-cloud-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	fs := afero.NewOsFs()
	log := logger.NewFileLogger(fs, logPath(), "setcache")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, app.UserMessage(err))
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, fs, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, crypto.NewCipher(), cfg, buildVersion, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, app.UserMessage(err))
		log.Fatal().Err(err).Msg("create services")
	}

	engine := localsync.NewEngine(fs, storages.LocalNodeStates, log)

	cli, err := client.NewApp(services, engine, cfg, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = cli.Run(ctx); err != nil {
		log.Error().Err(err).Msg("run error")
		fmt.Fprintln(os.Stderr, app.UserMessage(err))
		stop()
		storages.Close()
		os.Exit(1)
	}
}

// logPath places the log file next to the executable.
func logPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "setcache.log"
	}
	return filepath.Join(filepath.Dir(exe), "setcache.log")
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
