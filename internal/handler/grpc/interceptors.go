package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/vibechef/internal/app"
	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/rpc"
	"github.com/MKhiriev/vibechef/internal/utils"
)

const (
	authorizationKey = "authorization"
	traceIDKey       = "x-trace-id"
)

// serverStream overrides the context of a wrapped stream.
type serverStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *serverStream) Context() context.Context {
	return s.ctx
}

func (h *Handler) unaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	ctx = h.withTraceID(ctx)
	start := time.Now()

	resp, err := handler(ctx, req)

	logCall(ctx, info.FullMethod, start, err)
	return resp, err
}

func (h *Handler) streamLogging(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	ctx := h.withTraceID(ss.Context())
	start := time.Now()

	err := handler(srv, &serverStream{ServerStream: ss, ctx: ctx})

	logCall(ctx, info.FullMethod, start, err)
	return err
}

func (h *Handler) unaryMetrics(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	h.metrics.ObserveRPC(info.FullMethod, status.Code(err).String())
	return resp, err
}

func (h *Handler) streamMetrics(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	err := handler(srv, ss)
	h.metrics.ObserveRPC(info.FullMethod, status.Code(err).String())
	return err
}

// unaryAuth authenticates every method outside rpc.PublicMethods and stores
// the user ID with utils.WithUserID.
func (h *Handler) unaryAuth(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if rpc.PublicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	ctx, err := h.authenticate(ctx)
	if err != nil {
		return nil, err
	}
	return handler(ctx, req)
}

func (h *Handler) streamAuth(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if rpc.PublicMethods[info.FullMethod] {
		return handler(srv, ss)
	}

	ctx, err := h.authenticate(ss.Context())
	if err != nil {
		return err
	}
	return handler(srv, &serverStream{ServerStream: ss, ctx: ctx})
}

func (h *Handler) authenticate(ctx context.Context) (context.Context, error) {
	log := logger.FromContext(ctx)

	header := firstMetadataValue(ctx, authorizationKey)
	if header == "" {
		log.Warn().Msg("call without authorization metadata")
		return nil, status.Error(codes.Unauthenticated, app.MsgMissingAuthorization)
	}

	tokenString, err := utils.ParseBearerToken(header)
	if err != nil {
		log.Warn().Err(err).Send()
		return nil, status.Error(codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid)
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		log.Warn().Err(err).Msg("error occurred during parsing token")
		return nil, status.Error(codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid)
	}

	return utils.WithUserID(ctx, token.UserID), nil
}

// withTraceID attaches a logger carrying the caller's x-trace-id, or a new
// one, to ctx.
func (h *Handler) withTraceID(ctx context.Context) context.Context {
	traceID := firstMetadataValue(ctx, traceIDKey)
	if traceID == "" {
		traceID = uuid.NewString()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	ctx = context.WithValue(ctx, utils.TraceIDCtxKey, traceID)
	return l.WithContext(ctx)
}

func logCall(ctx context.Context, method string, start time.Time, err error) {
	logger.FromContext(ctx).Info().
		Str("method", method).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()
}

func firstMetadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}
