package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/vibechef/models"
)

func TestGetServerVersion(t *testing.T) {
	services := newTestServices()
	services.AppInfoService = &mockAppInfoService{build: models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123")}
	h := newTestHandler(t, services)

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.AppBuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "1.2.3", got.Version)
	assert.Equal(t, "2026-10-01", got.Date)
	assert.Equal(t, "abc123", got.Commit)
}

func TestGetServerVersion_MissingFieldsAreNA(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/version/", nil))

	assert.JSONEq(t, `{"version":"test-version","build_date":"N/A","build_commit":"N/A"}`, rec.Body.String())
}
