package adapter

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/rpc"
	"github.com/MKhiriev/vibechef/models"
)

type fakeRecipeStoreServer struct {
	mu        sync.Mutex
	lastAuth  string
	lastField *rpc.SetFieldRequest
	frames    []models.HistoryFrame
	upsertErr error
	block     chan struct{}
}

func (f *fakeRecipeStoreServer) Register(ctx context.Context, req *rpc.AuthRequest) (*rpc.AuthResponse, error) {
	if req.Login == "taken" {
		return nil, status.Error(codes.AlreadyExists, "login already exists")
	}
	return &rpc.AuthResponse{Token: "tok-" + req.Login, UserID: 5}, nil
}

func (f *fakeRecipeStoreServer) Login(ctx context.Context, req *rpc.AuthRequest) (*rpc.AuthResponse, error) {
	return nil, status.Error(codes.Unauthenticated, "invalid login/password")
}

func (f *fakeRecipeStoreServer) Upsert(ctx context.Context, req *rpc.UpsertRequest) (*rpc.UpsertResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	md, _ := metadata.FromIncomingContext(ctx)
	if values := md.Get("authorization"); len(values) > 0 {
		f.lastAuth = values[0]
	}
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	return &rpc.UpsertResponse{ID: "id-" + req.Recipe.Title}, nil
}

func (f *fakeRecipeStoreServer) Delete(ctx context.Context, req *rpc.DeleteRequest) (*rpc.Empty, error) {
	return nil, status.Error(codes.NotFound, "data not found")
}

func (f *fakeRecipeStoreServer) SetField(ctx context.Context, req *rpc.SetFieldRequest) (*rpc.Empty, error) {
	f.mu.Lock()
	f.lastField = req
	f.mu.Unlock()
	return &rpc.Empty{}, nil
}

func (f *fakeRecipeStoreServer) Watch(req *rpc.WatchRequest, stream rpc.WatchServerStream) error {
	for i := range f.frames {
		if err := stream.Send(&f.frames[i]); err != nil {
			return err
		}
	}
	if f.block != nil {
		select {
		case <-stream.Context().Done():
			close(f.block)
		case <-time.After(5 * time.Second):
		}
	}
	return nil
}

func newTestGRPCStore(t *testing.T, srv rpc.RecipeStoreServer) *grpcRemoteStore {
	t.Helper()

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	rpc.RegisterRecipeStoreServer(server, srv)
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpc.CodecName)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &grpcRemoteStore{conn: conn, timeout: 2 * time.Second, logger: logger.Nop()}
}

func TestGRPCRegister(t *testing.T) {
	s := newTestGRPCStore(t, &fakeRecipeStoreServer{})

	user, err := s.Register(context.Background(), models.User{Login: "chef", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), user.UserID)
	assert.Equal(t, "tok-chef", s.Token())

	_, err = s.Register(context.Background(), models.User{Login: "taken", Password: "secret1"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestGRPCLogin_Unauthenticated(t *testing.T) {
	s := newTestGRPCStore(t, &fakeRecipeStoreServer{})

	_, err := s.Login(context.Background(), models.User{Login: "chef", Password: "nope"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGRPCUpsert_SendsToken(t *testing.T) {
	fake := &fakeRecipeStoreServer{}
	s := newTestGRPCStore(t, fake)
	s.SetToken("tok")

	id, err := s.Upsert(context.Background(), 1, models.Recipe{Title: "soup"})
	require.NoError(t, err)
	assert.Equal(t, "id-soup", id)
	fake.mu.Lock()
	assert.Equal(t, "Bearer tok", fake.lastAuth)
	fake.upsertErr = status.Error(codes.InvalidArgument, "invalid data provided")
	fake.mu.Unlock()

	_, err = s.Upsert(context.Background(), 1, models.Recipe{Title: "soup"})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestGRPCDeleteAndSetField(t *testing.T) {
	fake := &fakeRecipeStoreServer{}
	s := newTestGRPCStore(t, fake)

	assert.ErrorIs(t, s.Delete(context.Background(), 1, "r-1"), ErrNotFound)

	require.NoError(t, s.SetField(context.Background(), 1, "r-1", models.FieldIsFavorite, true))
	fake.mu.Lock()
	defer fake.mu.Unlock()
	require.NotNil(t, fake.lastField)
	assert.Equal(t, "r-1", fake.lastField.ID)
	assert.Equal(t, true, fake.lastField.Value)
}

func TestGRPCSubscribe_FramesThenClosed(t *testing.T) {
	fake := &fakeRecipeStoreServer{frames: []models.HistoryFrame{
		{Recipes: []models.Recipe{{ID: "a"}}},
		{Recipes: []models.Recipe{{ID: "b"}, {ID: "a"}}},
	}}
	s := newTestGRPCStore(t, fake)

	ch, err := s.Subscribe(context.Background(), 1)
	require.NoError(t, err)

	assert.Len(t, receiveSnapshot(t, ch).Recipes, 1)
	assert.Len(t, receiveSnapshot(t, ch).Recipes, 2)

	ended := receiveSnapshot(t, ch)
	assert.ErrorIs(t, ended.Err, ErrSubscriptionClosed)
	assert.ErrorIs(t, ended.Err, ErrUnavailable)
}

func TestGRPCSubscribe_CancelReleasesStream(t *testing.T) {
	fake := &fakeRecipeStoreServer{
		frames: []models.HistoryFrame{{Recipes: []models.Recipe{}}},
		block:  make(chan struct{}),
	}
	s := newTestGRPCStore(t, fake)

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := s.Subscribe(ctx, 1)
	require.NoError(t, err)

	receiveSnapshot(t, ch)
	cancel()

	select {
	case _, open := <-ch:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}

	select {
	case <-fake.block:
	case <-time.After(2 * time.Second):
		t.Fatal("server stream not cancelled")
	}
}

func TestNewRemoteStore_PicksTransport(t *testing.T) {
	s, err := NewRemoteStore(configWith("", "localhost:9090"), logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &grpcRemoteStore{}, s)

	s, err = NewRemoteStore(configWith("http://localhost:8080", ""), logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, &httpRemoteStore{}, s)
}
