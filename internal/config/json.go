package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
		Cache struct {
			DSN string `json:"dsn"`
		} `json:"cache"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
		PingInterval   Duration `json:"ping_interval"`
	} `json:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	Generation struct {
		URL               string   `json:"url"`
		Model             string   `json:"model"`
		APIKey            string   `json:"api_key"`
		Timeout           Duration `json:"timeout"`
		Temperature       *float64 `json:"temperature"`
		RequestsPerMinute int      `json:"requests_per_minute"`
	} `json:"generation"`

	Notify struct {
		RedisAddr     string `json:"redis_addr"`
		RedisPassword string `json:"redis_password"`
		Channel       string `json:"channel"`
	} `json:"notify"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			Version:       j.App.Version,
		},
		Storage: Storage{
			DB:    DB{DSN: j.Storage.DB.DSN},
			Cache: Cache{DSN: j.Storage.Cache.DSN},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			GRPCAddress:    j.Server.GRPCAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
			PingInterval:   time.Duration(j.Server.PingInterval),
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			GRPCAddress:    j.Adapter.GRPCAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Generation: Generation{
			URL:               j.Generation.URL,
			Model:             j.Generation.Model,
			APIKey:            j.Generation.APIKey,
			Timeout:           time.Duration(j.Generation.Timeout),
			Temperature:       j.Generation.Temperature,
			RequestsPerMinute: j.Generation.RequestsPerMinute,
		},
		Notify: Notify{
			RedisAddr:     j.Notify.RedisAddr,
			RedisPassword: j.Notify.RedisPassword,
			Channel:       j.Notify.Channel,
		},
	}, nil
}

// Duration accepts both "30s"-style strings and integer nanoseconds in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
