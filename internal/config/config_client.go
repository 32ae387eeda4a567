package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds how the client reaches the server.
type ClientAdapter struct {
	HTTPAddress    string
	GRPCAddress    string
	RequestTimeout time.Duration
}

// ClientStorage holds the local cache location.
type ClientStorage struct {
	CacheDSN string
}

// ClientGeneration holds the language model endpoint settings.
type ClientGeneration struct {
	URL               string
	Model             string
	APIKey            string
	Timeout           time.Duration
	Temperature       float64
	RequestsPerMinute int
}

// ClientConfig is the validated view of StructuredConfig used by
// cmd/client.
type ClientConfig struct {
	Adapter    ClientAdapter
	Storage    ClientStorage
	Generation ClientGeneration
}

// GetClientConfig loads the structured config, keeps only what the client
// runtime uses and validates it.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			GRPCAddress:    cfg.Adapter.GRPCAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			CacheDSN: cfg.Storage.Cache.DSN,
		},
		Generation: ClientGeneration{
			URL:               cfg.Generation.URL,
			Model:             cfg.Generation.Model,
			APIKey:            cfg.Generation.APIKey,
			Timeout:           cfg.Generation.Timeout,
			Temperature:       DefaultTemperature,
			RequestsPerMinute: cfg.Generation.RequestsPerMinute,
		},
	}
	if cfg.Generation.Temperature != nil {
		clientCfg.Generation.Temperature = *cfg.Generation.Temperature
	}

	return clientCfg, clientCfg.validate()
}
