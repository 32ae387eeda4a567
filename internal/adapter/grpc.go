package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/vibechef/internal/config"
	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/rpc"
	"github.com/MKhiriev/vibechef/models"
)

type grpcRemoteStore struct {
	conn    *grpc.ClientConn
	timeout time.Duration

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewGRPCRemoteStore constructs the gRPC implementation of [RemoteStore]. The
// connection is established lazily on the first call.
func NewGRPCRemoteStore(cfg config.ClientAdapter, logger *logger.Logger) (RemoteStore, error) {
	address := strings.TrimSpace(cfg.GRPCAddress)
	if address == "" {
		return nil, fmt.Errorf("invalid adapter grpc address: empty address")
	}

	conn, err := grpc.NewClient(address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpc.CodecName)),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter grpc address: %w", err)
	}

	return &grpcRemoteStore{conn: conn, timeout: cfg.RequestTimeout, logger: logger}, nil
}

func (g *grpcRemoteStore) SetToken(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = strings.TrimSpace(token)
}

func (g *grpcRemoteStore) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

// Close releases the underlying connection.
func (g *grpcRemoteStore) Close() error {
	return g.conn.Close()
}

func (g *grpcRemoteStore) Register(ctx context.Context, user models.User) (models.User, error) {
	return g.authenticate(ctx, rpc.MethodRegister, user)
}

func (g *grpcRemoteStore) Login(ctx context.Context, user models.User) (models.User, error) {
	return g.authenticate(ctx, rpc.MethodLogin, user)
}

func (g *grpcRemoteStore) authenticate(ctx context.Context, method string, user models.User) (models.User, error) {
	var resp rpc.AuthResponse
	req := &rpc.AuthRequest{Login: user.Login, Password: user.Password}

	if err := g.invoke(ctx, method, req, &resp); err != nil {
		return models.User{}, err
	}

	g.SetToken(resp.Token)
	return models.User{UserID: resp.UserID, Login: user.Login}, nil
}

// Subscribe opens the server-streaming Watch call.
func (g *grpcRemoteStore) Subscribe(ctx context.Context, userID int64) (<-chan models.HistorySnapshot, error) {
	stream, err := g.conn.NewStream(g.withToken(ctx), &rpc.WatchStreamDesc, rpc.MethodWatch)
	if err != nil {
		return nil, mapGRPCError(err)
	}
	if err = stream.SendMsg(&rpc.WatchRequest{}); err != nil {
		return nil, mapGRPCError(err)
	}
	if err = stream.CloseSend(); err != nil {
		return nil, mapGRPCError(err)
	}

	out := make(chan models.HistorySnapshot)
	go func() {
		defer close(out)

		for {
			var frame models.HistoryFrame
			err := stream.RecvMsg(&frame)
			if ctx.Err() != nil {
				return
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = fmt.Errorf("%w: %w", ErrUnavailable, ErrSubscriptionClosed)
				} else {
					err = mapGRPCError(err)
				}
				g.logger.Debug().Err(err).Int64("user_id", userID).Msg("history stream ended")
				send(ctx, out, models.HistorySnapshot{Err: err})
				return
			}

			if frame.Error != "" {
				send(ctx, out, models.HistorySnapshot{Err: fmt.Errorf("%w: %s", ErrUnavailable, frame.Error)})
				return
			}

			if !send(ctx, out, models.HistorySnapshot{Recipes: frame.Recipes}) {
				return
			}
		}
	}()

	return out, nil
}

func (g *grpcRemoteStore) Upsert(ctx context.Context, userID int64, recipe models.Recipe) (string, error) {
	var resp rpc.UpsertResponse
	if err := g.invoke(ctx, rpc.MethodUpsert, &rpc.UpsertRequest{Recipe: recipe}, &resp); err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", errors.New("upsert response without id")
	}

	return resp.ID, nil
}

func (g *grpcRemoteStore) Delete(ctx context.Context, userID int64, id string) error {
	return g.invoke(ctx, rpc.MethodDelete, &rpc.DeleteRequest{ID: id}, &rpc.Empty{})
}

func (g *grpcRemoteStore) SetField(ctx context.Context, userID int64, id, field string, value any) error {
	req := &rpc.SetFieldRequest{ID: id, Field: field, Value: value}
	return g.invoke(ctx, rpc.MethodSetField, req, &rpc.Empty{})
}

func (g *grpcRemoteStore) invoke(ctx context.Context, method string, req, resp any) error {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	return mapGRPCError(g.conn.Invoke(g.withToken(ctx), method, req, resp))
}

func (g *grpcRemoteStore) withToken(ctx context.Context) context.Context {
	if token := g.Token(); token != "" {
		return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
	}
	return ctx
}
