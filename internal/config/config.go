// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the merged configuration shared by the server and the
// client binaries. Each binary reads the part it needs through
// GetServerConfig or GetClientConfig.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: variable name for scalar fields.
type StructuredConfig struct {
	App        App        `envPrefix:"APP_"`
	Storage    Storage    `envPrefix:"STORAGE_"`
	Server     Server     `envPrefix:"SERVER_"`
	Adapter    Adapter    `envPrefix:"ADAPTER_"`
	Generation Generation `envPrefix:"GENERATION_"`
	Notify     Notify     `envPrefix:"NOTIFY_"`

	// JSONFilePath is an optional JSON file merged on top of env and flags.
	// Env: CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`
}

// App holds token and versioning settings of the server.
type App struct {
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
	// Version is reported by /api/version/.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups both persistence backends: the server database and the
// client's local recipe cache.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Cache Cache `envPrefix:"CACHE_"`
}

// DB is the server PostgreSQL connection.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Cache is the client SQLite file holding the offline recipe mirror and
// local settings.
type Cache struct {
	// Env: STORAGE_CACHE_DSN
	DSN string `env:"DSN"`
}

// Server holds listener settings of the server binary.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// Env: SERVER_GRPC_ADDRESS. gRPC is disabled when empty.
	GRPCAddress string `env:"GRPC_ADDRESS"`
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// PingInterval is the keep-alive period of history WebSocket streams.
	// Env: SERVER_PING_INTERVAL
	PingInterval time.Duration `env:"PING_INTERVAL"`
}

// Adapter holds how the client reaches the server.
type Adapter struct {
	// HTTPAddress is a base URL or host:port of the server HTTP API.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// GRPCAddress, when set, makes the client talk gRPC instead of HTTP.
	// Env: ADAPTER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Generation configures the language model endpoint used by the client.
type Generation struct {
	// URL is the base URL of an Ollama-compatible API.
	// Env: GENERATION_URL
	URL string `env:"URL"`
	// Env: GENERATION_MODEL
	Model string `env:"MODEL"`
	// APIKey is sent as a bearer token when non-empty.
	// Env: GENERATION_API_KEY
	APIKey string `env:"API_KEY"`
	// Timeout bounds one generation call.
	// Env: GENERATION_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
	// Temperature is a pointer so that an explicit 0 survives merging.
	// Env: GENERATION_TEMPERATURE
	Temperature *float64 `env:"TEMPERATURE"`
	// Env: GENERATION_REQUESTS_PER_MINUTE
	RequestsPerMinute int `env:"REQUESTS_PER_MINUTE"`
}

// Notify configures cross-instance change notifications. Without a Redis
// address the server notifies in-process only.
type Notify struct {
	// Env: NOTIFY_REDIS_ADDR
	RedisAddr string `env:"REDIS_ADDR"`
	// Env: NOTIFY_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`
	// Env: NOTIFY_CHANNEL
	Channel string `env:"CHANNEL"`
}

// Defaults applied before any other source.
const (
	DefaultRequestTimeout     = 15 * time.Second
	DefaultGenerationTimeout  = 30 * time.Second
	DefaultTemperature        = 0.9
	DefaultRequestsPerMinute  = 10
	DefaultTokenDuration      = 24 * time.Hour
	DefaultPingInterval       = 25 * time.Second
	DefaultNotifyChannel      = "vibechef:recipes"
	DefaultCacheDSN           = "vibechef-cache.db"
	DefaultGenerationURL      = "http://localhost:11434"
	DefaultGenerationModel    = "llava"
	DefaultServerHTTPAddress  = "localhost:8080"
	DefaultAdapterHTTPAddress = "http://localhost:8080"
	DefaultTokenIssuer        = "vibechef"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{
			Cache: Cache{DSN: DefaultCacheDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultServerHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			PingInterval:   DefaultPingInterval,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Generation: Generation{
			URL:               DefaultGenerationURL,
			Model:             DefaultGenerationModel,
			Timeout:           DefaultGenerationTimeout,
			Temperature:       float64Ptr(DefaultTemperature),
			RequestsPerMinute: DefaultRequestsPerMinute,
		},
		Notify: Notify{
			Channel: DefaultNotifyChannel,
		},
	}
}

// GetStructuredConfig loads configuration from, in increasing priority:
//  1. built-in defaults
//  2. environment variables
//  3. command-line flags
//  4. the JSON file named by CONFIG or -c
//
// A later source overrides a field only when it sets a non-zero value.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}

func float64Ptr(v float64) *float64 {
	return &v
}
