package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gorilla/websocket"

	"github.com/MKhiriev/vibechef/internal/config"
	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/utils"
	"github.com/MKhiriev/vibechef/models"
)

const (
	pathRegister = "/api/auth/register"
	pathLogin    = "/api/auth/login"
	pathRecipes  = "/api/recipes/"
	pathWatch    = "/api/recipes/ws"
)

// wsReadTimeout bounds the silence on the push channel. The server pings
// well within it, so hitting it means the connection is gone.
const wsReadTimeout = 60 * time.Second

type httpRemoteStore struct {
	client *utils.HTTPClient
	dialer *websocket.Dialer
	wsURL  string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPRemoteStore constructs the REST implementation of [RemoteStore].
// History is pushed over a WebSocket at /api/recipes/ws on the same host.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a URL.
func NewHTTPRemoteStore(cfg config.ClientAdapter, logger *logger.Logger) (RemoteStore, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	wsURL, err := websocketURL(baseURL, pathWatch)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpRemoteStore{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: cfg.RequestTimeout,
		},
		wsURL:  wsURL,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func websocketURL(baseURL, path string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + path

	return u.String(), nil
}

func (h *httpRemoteStore) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpRemoteStore) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs the credentials to /api/auth/register. The bearer token
// is taken from the Authorization response header.
func (h *httpRemoteStore) Register(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, pathRegister, user)
}

// Login POSTs the credentials to /api/auth/login.
func (h *httpRemoteStore) Login(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, pathLogin, user)
}

func (h *httpRemoteStore) authenticate(ctx context.Context, path string, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %s request: %w", ErrUnavailable, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}

	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("%s parse user id: %w", path, err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Login: user.Login}, nil
}

// Subscribe dials the WebSocket push channel and relays its frames.
func (h *httpRemoteStore) Subscribe(ctx context.Context, userID int64) (<-chan models.HistorySnapshot, error) {
	header := http.Header{}
	header.Set("Authorization", "Bearer "+h.Token())

	conn, resp, err := h.dialer.DialContext(ctx, h.wsURL, header)
	if err != nil {
		if resp != nil {
			body, _ := io.ReadAll(resp.Body)
			_ = resp.Body.Close()
			if mapped := mapStatus(resp.StatusCode, string(body)); mapped != nil {
				return nil, mapped
			}
		}
		return nil, fmt.Errorf("%w: dial %s: %w", ErrUnavailable, h.wsURL, err)
	}

	out := make(chan models.HistorySnapshot)
	go h.readFrames(ctx, conn, userID, out)

	return out, nil
}

// readFrames owns conn and out. It closes both when the server fails, the
// connection breaks, or ctx is cancelled.
func (h *httpRemoteStore) readFrames(ctx context.Context, conn *websocket.Conn, userID int64, out chan<- models.HistorySnapshot) {
	defer close(out)

	done := make(chan struct{})
	defer close(done)

	// ReadJSON blocks; closing the connection is the only way to unblock it.
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		_ = conn.Close()
	}()

	extend := func() { _ = conn.SetReadDeadline(time.Now().Add(wsReadTimeout)) }
	extend()
	conn.SetPingHandler(func(data string) error {
		extend()
		err := conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(time.Second))
		if errors.Is(err, websocket.ErrCloseSent) {
			return nil
		}
		return err
	})

	for {
		var frame models.HistoryFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if ctx.Err() != nil {
				return
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				err = ErrSubscriptionClosed
			}
			h.logger.Debug().Err(err).Int64("user_id", userID).Msg("history push channel ended")
			send(ctx, out, models.HistorySnapshot{Err: fmt.Errorf("%w: %w", ErrUnavailable, err)})
			return
		}

		if frame.Error != "" {
			send(ctx, out, models.HistorySnapshot{Err: fmt.Errorf("%w: %s", ErrUnavailable, frame.Error)})
			return
		}

		if !send(ctx, out, models.HistorySnapshot{Recipes: frame.Recipes}) {
			return
		}
		extend()
	}
}

func send(ctx context.Context, out chan<- models.HistorySnapshot, snapshot models.HistorySnapshot) bool {
	select {
	case out <- snapshot:
		return true
	case <-ctx.Done():
		return false
	}
}

// Upsert POSTs the recipe to /api/recipes/ and returns the stored id.
func (h *httpRemoteStore) Upsert(ctx context.Context, userID int64, recipe models.Recipe) (string, error) {
	var result models.UpsertResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(recipe).
		SetResult(&result).
		Post(pathRecipes)
	if err != nil {
		return "", fmt.Errorf("%w: upsert request: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if result.ID == "" {
		return "", errors.New("upsert response without id")
	}

	return result.ID, nil
}

func (h *httpRemoteStore) Delete(ctx context.Context, userID int64, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete(pathRecipes + "{id}")
	if err != nil {
		return fmt.Errorf("%w: delete request: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

// SetField PATCHes /api/recipes/{id} with {"field": ..., "value": ...}.
func (h *httpRemoteStore) SetField(ctx context.Context, userID int64, id, field string, value any) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(models.SetFieldRequest{Field: field, Value: value}).
		Patch(pathRecipes + "{id}")
	if err != nil {
		return fmt.Errorf("%w: set field request: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (h *httpRemoteStore) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Token())
}
