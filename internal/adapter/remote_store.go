package adapter

import (
	"strings"

	"github.com/MKhiriev/vibechef/internal/config"
	"github.com/MKhiriev/vibechef/internal/logger"
)

// NewRemoteStore returns the gRPC store when a gRPC address is configured
// and the HTTP store otherwise.
func NewRemoteStore(cfg config.ClientAdapter, logger *logger.Logger) (RemoteStore, error) {
	if strings.TrimSpace(cfg.GRPCAddress) != "" {
		logger.Info().Str("address", cfg.GRPCAddress).Msg("using gRPC remote store")
		return NewGRPCRemoteStore(cfg, logger)
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("using HTTP remote store")
	return NewHTTPRemoteStore(cfg, logger)
}
