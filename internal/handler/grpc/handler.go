// Package grpc implements the gRPC transport of the VibeChef server: the
// RecipeStore service over the JSON codec and its interceptors.
package grpc

import (
	"google.golang.org/grpc"

	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/metrics"
	"github.com/MKhiriev/vibechef/internal/rpc"
	"github.com/MKhiriev/vibechef/internal/service"
)

// Handler is the gRPC counterpart of the HTTP handler. It implements
// [rpc.RecipeStoreServer] on top of the service layer.
type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	logger *logger.Logger
}

var _ rpc.RecipeStoreServer = (*Handler)(nil)

func NewHandler(services *service.Services, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		metrics:  metrics,
		logger:   logger,
	}
}

// ServerOptions chains the handler's interceptors: tracing and access log
// first, then metrics, then authentication.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.unaryLogging, h.unaryMetrics, h.unaryAuth),
		grpc.ChainStreamInterceptor(h.streamLogging, h.streamMetrics, h.streamAuth),
	}
}
