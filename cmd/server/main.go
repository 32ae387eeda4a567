package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vibechef/internal/config"
	"github.com/MKhiriev/vibechef/internal/handler"
	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/metrics"
	"github.com/MKhiriev/vibechef/internal/notify"
	"github.com/MKhiriev/vibechef/internal/server"
	"github.com/MKhiriev/vibechef/internal/service"
	"github.com/MKhiriev/vibechef/internal/store"
	"github.com/MKhiriev/vibechef/internal/workers"
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

	log := logger.NewLogger("vibechef-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	bus, background, err := newBus(ctx, cfg.Notify, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating change bus")
	}
	defer bus.Close()

	services, err := service.NewServices(storages, bus, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, metrics.New(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log, background...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newBus picks the Redis relay when an address is configured. The relay
// also has to run as a background worker to receive other instances' changes.
func newBus(ctx context.Context, cfg config.Notify, log *logger.Logger) (notify.Bus, []workers.Worker, error) {
	if cfg.RedisAddr == "" {
		log.Info().Msg("no redis address configured, notifying in-process only")
		return notify.NewMemoryBus(), nil, nil
	}

	bus, err := notify.NewRedisBus(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.Channel, log)
	if err != nil {
		return nil, nil, err
	}
	return bus, []workers.Worker{bus}, nil
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
