package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructuredConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.Storage.DB.DSN = "postgres://localhost/vibechef"
	cfg.App.TokenSignKey = "secret"
	return cfg
}

// ── server ────────────────────────────────────────────────────────────────────

func TestNewServerConfig_Valid(t *testing.T) {
	cfg, err := newServerConfig(validStructuredConfig())
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeoutOrDefault())
}

func TestNewServerConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "no dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no duration", mutate: func(c *StructuredConfig) { c.App.TokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructuredConfig()
			tt.mutate(cfg)

			_, err := newServerConfig(cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequestTimeoutOrDefault(t *testing.T) {
	cfg := &ServerConfig{Server: Server{RequestTimeout: time.Second}}
	assert.Equal(t, time.Second, cfg.RequestTimeoutOrDefault())
}

// ── client ────────────────────────────────────────────────────────────────────

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg, err := newClientConfig(defaultConfig())
	require.NoError(t, err)
	assert.Equal(t, DefaultCacheDSN, cfg.Storage.CacheDSN)
	assert.Equal(t, 30*time.Second, cfg.Generation.Timeout)
}

func TestNewClientConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "memory cache", mutate: func(c *StructuredConfig) { c.Storage.Cache.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no cache", mutate: func(c *StructuredConfig) { c.Storage.Cache.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no server address", mutate: func(c *StructuredConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no timeout", mutate: func(c *StructuredConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no model", mutate: func(c *StructuredConfig) { c.Generation.Model = "" }, wantErr: ErrInvalidGenerationConfigs},
		{name: "no rate", mutate: func(c *StructuredConfig) { c.Generation.RequestsPerMinute = 0 }, wantErr: ErrInvalidGenerationConfigs},
		{name: "hot temperature", mutate: func(c *StructuredConfig) { c.Generation.Temperature = float64Ptr(3) }, wantErr: ErrInvalidGenerationConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			_, err := newClientConfig(cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_GRPCOnly(t *testing.T) {
	cfg := defaultConfig()
	cfg.Adapter.HTTPAddress = ""
	cfg.Adapter.GRPCAddress = "localhost:9090"

	_, err := newClientConfig(cfg)
	assert.NoError(t, err)
}

func TestNewClientConfig_ZeroTemperatureFromEnv(t *testing.T) {
	t.Setenv("GENERATION_TEMPERATURE", "0")

	structured, err := newConfigBuilder(nil).withDefaults().withEnv().build()
	require.NoError(t, err)
	require.NotNil(t, structured.Generation.Temperature)
	assert.Zero(t, *structured.Generation.Temperature)

	cfg, err := newClientConfig(structured)
	require.NoError(t, err)
	assert.Zero(t, cfg.Generation.Temperature)
}

func TestNewClientConfig_UnsetTemperatureUsesDefault(t *testing.T) {
	structured := defaultConfig()
	structured.Generation.Temperature = nil

	cfg, err := newClientConfig(structured)
	require.NoError(t, err)
	assert.InDelta(t, DefaultTemperature, cfg.Generation.Temperature, 1e-9)
}
