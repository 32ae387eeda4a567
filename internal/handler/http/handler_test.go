package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/vibechef/internal/config"
	"github.com/MKhiriev/vibechef/internal/logger"
	"github.com/MKhiriev/vibechef/internal/metrics"
	"github.com/MKhiriev/vibechef/internal/service"
	"github.com/MKhiriev/vibechef/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService. Unset funcs fail the
// call with an error so that unexpected use is visible.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn == nil {
		return acceptTestToken(ctx, tokenString)
	}
	return m.parseTokenFn(ctx, tokenString)
}

type mockRecipeService struct {
	saveFn     func(ctx context.Context, userID int64, recipe models.Recipe) (string, error)
	listFn     func(ctx context.Context, userID int64) ([]models.Recipe, error)
	deleteFn   func(ctx context.Context, userID int64, id string) error
	setFieldFn func(ctx context.Context, userID int64, id, field string, value any) error
	watchFn    func(ctx context.Context, userID int64) <-chan models.HistorySnapshot
}

func (m *mockRecipeService) Save(ctx context.Context, userID int64, recipe models.Recipe) (string, error) {
	return m.saveFn(ctx, userID, recipe)
}

func (m *mockRecipeService) List(ctx context.Context, userID int64) ([]models.Recipe, error) {
	return m.listFn(ctx, userID)
}

func (m *mockRecipeService) Delete(ctx context.Context, userID int64, id string) error {
	return m.deleteFn(ctx, userID, id)
}

func (m *mockRecipeService) SetField(ctx context.Context, userID int64, id, field string, value any) error {
	return m.setFieldFn(ctx, userID, id, field, value)
}

func (m *mockRecipeService) Watch(ctx context.Context, userID int64) <-chan models.HistorySnapshot {
	return m.watchFn(ctx, userID)
}

type mockAppInfoService struct {
	build models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.build.Version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return m.build
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testToken  = "good-token"
	testUserID = int64(7)
)

// acceptTestToken accepts only testToken, for testUserID.
func acceptTestToken(_ context.Context, tokenString string) (models.Token, error) {
	if tokenString != testToken {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{SignedString: tokenString, UserID: testUserID}, nil
}

func newTestServices() *service.Services {
	return &service.Services{
		AuthService:    &mockAuthService{},
		RecipeService:  &mockRecipeService{},
		AppInfoService: &mockAppInfoService{build: models.NewAppBuildInfo("test-version", "", "")},
	}
}

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return NewHandler(services, metrics.New(), config.Server{PingInterval: time.Hour}, logger.Nop())
}

// serve runs req through the full router.
func serve(t *testing.T, h *Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_AppliesDefaults(t *testing.T) {
	h := NewHandler(newTestServices(), metrics.New(), config.Server{}, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, config.DefaultRequestTimeout, h.requestTimeout)
	assert.Equal(t, config.DefaultPingInterval, h.pingInterval)
}

func TestNewHandler_KeepsConfiguredValues(t *testing.T) {
	cfg := config.Server{RequestTimeout: 3 * time.Second, PingInterval: time.Second}

	h := NewHandler(newTestServices(), metrics.New(), cfg, logger.Nop())

	assert.Equal(t, 3*time.Second, h.requestTimeout)
	assert.Equal(t, time.Second, h.pingInterval)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

var expectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodPost, "/api/auth/register"},
	{http.MethodPost, "/api/auth/login"},
	{http.MethodGet, "/api/version/"},
	{http.MethodGet, "/metrics"},
	// auth middleware answers 401, which still proves the route exists
	{http.MethodGet, "/api/recipes/"},
	{http.MethodPost, "/api/recipes/"},
	{http.MethodDelete, "/api/recipes/abc"},
	{http.MethodPatch, "/api/recipes/abc"},
	{http.MethodGet, "/api/recipes/ws"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(t, h, httptest.NewRequest(tc.method, tc.path, nil))

			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_RecipeRoutesRequireAuth(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/recipes/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	rec := serve(t, h, httptest.NewRequest(http.MethodPost, "/api/version/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
