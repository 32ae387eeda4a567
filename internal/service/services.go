package service

import (
	"github.com/MKhiriev/vibechef/internal/config"
	"github.com/MKhiriev/vibechef/internal/crypto"
	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/notify"
	"github.com/MKhiriev/vibechef/internal/store"
	"github.com/MKhiriev/vibechef/internal/utils"
	"github.com/MKhiriev/vibechef/internal/validators"
	"github.com/MKhiriev/vibechef/models"
)

type Services struct {
	AuthService    AuthService
	RecipeService  RecipeService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, bus notify.Bus, cfg *config.ServerConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewStructValidator()

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	recipes := NewRecipeService(storages.RecipeRepository, bus, utils.NewUUIDGenerator(), logger)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(0), validator, cfg.App, logger),
		RecipeService:  NewRecipeValidationService(validator).Wrap(recipes),
		AppInfoService: appInfo,
	}, nil
}
