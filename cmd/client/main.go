package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/vibechef/internal/adapter"
	"github.com/MKhiriev/vibechef/internal/client"
	"github.com/MKhiriev/vibechef/internal/config"
	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/service"
	"github.com/MKhiriev/vibechef/internal/store"
	"github.com/MKhiriev/vibechef/internal/tui"
	"github.com/MKhiriev/vibechef/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := run(build); err != nil {
		fmt.Fprintf(os.Stderr, "vibechef: %v\n", err)
		os.Exit(1)
	}
}

func run(build models.AppBuildInfo) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	log := logger.NewClientLogger("vibechef-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer localStorage.Close()

	remote, err := adapter.NewRemoteStore(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create remote store: %w", err)
	}

	services := service.NewClientServices(localStorage, remote, cfg.Generation, log)
	ui := tui.New(services, build, log)

	if err = client.NewApp(services, ui, log).Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		return err
	}
	return nil
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
