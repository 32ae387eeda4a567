package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port flag value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses args into a partial config. Unset flags stay zero so
// they do not override other sources.
//
// Flags:
//
//	-a              server HTTP address host:port
//	-grpc-address   server gRPC address host:port
//	-d              server database DSN
//	-cache          client cache SQLite DSN
//	-c / -config    JSON config file path
//	-token-sign-key token signing key
//	-token-issuer   token issuer
//	-token-duration token lifetime (e.g. 24h)
//	-request-timeout request timeout (e.g. 15s)
//	-server         client: server HTTP base URL
//	-server-grpc    client: server gRPC address
//	-gen-url        client: generation API base URL
//	-gen-model      client: generation model name
//	-gen-timeout    client: generation timeout
//	-redis          server: Redis address for change notifications
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("vibechef", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		serverAddress, grpcServerAddress NetAddress
		databaseDSN, cacheDSN            string
		jsonConfigPath                   string
		tokenSignKey, tokenIssuer        string
		tokenDuration, requestTimeout    time.Duration
		adapterAddress, adapterGRPC      string
		genURL, genModel                 string
		genTimeout                       time.Duration
		redisAddr                        string
	)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&cacheDSN, "cache", "", "Local cache SQLite DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&adapterAddress, "server", "", "Server HTTP base URL")
	fs.StringVar(&adapterGRPC, "server-grpc", "", "Server gRPC address")
	fs.StringVar(&genURL, "gen-url", "", "Generation API base URL")
	fs.StringVar(&genModel, "gen-model", "", "Generation model")
	fs.DurationVar(&genTimeout, "gen-timeout", 0, "Generation timeout")
	fs.StringVar(&redisAddr, "redis", "", "Redis address for change notifications")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Cache: Cache{DSN: cacheDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			GRPCAddress:    adapterGRPC,
			RequestTimeout: requestTimeout,
		},
		Generation: Generation{
			URL:     genURL,
			Model:   genModel,
			Timeout: genTimeout,
		},
		Notify: Notify{
			RedisAddr: redisAddr,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, ok := strings.Cut(s, ":")
	if !ok || strings.Contains(portStr, ":") {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port must be in range 1..65535")
	}

	if host != "localhost" && host != "" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
