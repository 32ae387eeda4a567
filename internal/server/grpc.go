package server

import (
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/vibechef/internal/config"
	grpchandler "github.com/MKhiriev/vibechef/internal/handler/grpc"
	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/rpc"
)

type grpcServer struct {
	server   *grpc.Server
	listener net.Listener

	logger *logger.Logger
}

// newGRPCServer binds cfg.GRPCAddress right away so that a busy port fails
// startup instead of the serving goroutine.
func newGRPCServer(handler *grpchandler.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(handler.ServerOptions()...)
	rpc.RegisterRecipeStoreServer(server, handler)

	return &grpcServer{
		server:   server,
		listener: listener,
		logger:   logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	if err := g.server.Serve(g.listener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve failed")
	}
}

// Shutdown waits up to shutdownTimeout for running calls. Watch streams
// never finish on their own, so whatever is left is then cut by Stop.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(shutdownTimeout):
		g.logger.Warn().Msg("gRPC graceful stop timed out, closing open streams")
		g.server.Stop()
	}
}
