package service

import (
	"github.com/MKhiriev/vibechef/internal/adapter"
	"github.com/MKhiriev/vibechef/internal/config"
	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/store"
	"github.com/MKhiriev/vibechef/internal/validators"
)

type ClientServices struct {
	HistorySync       HistorySync
	HistoryJob        HistoryJob
	GenerationService GenerationService
	AuthService       ClientAuthService
	SettingsService   SettingsService
}

func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteStore, cfg config.ClientGeneration, logger *logger.Logger) *ClientServices {
	validator := validators.NewStructValidator()
	settings := NewSettingsService(storages.Settings, logger)
	history := NewHistorySync(remote, storages.RecipeCache, logger)

	return &ClientServices{
		HistorySync:       history,
		HistoryJob:        NewHistoryJob(history),
		GenerationService: NewGenerationService(NewGenerator(cfg, logger), validator, logger),
		AuthService:       NewClientAuthService(remote, settings, validator, logger),
		SettingsService:   settings,
	}
}
