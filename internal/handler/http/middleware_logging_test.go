package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		path        string
		status      int
		body        string
		wantInEntry []string
	}{
		{
			name:   "GET 200",
			method: http.MethodGet,
			path:   "/api/recipes/",
			status: http.StatusOK,
			body:   "OK",
			wantInEntry: []string{
				`"method":"GET"`,
				`"uri":"/api/recipes/"`,
				`"status":200`,
				`"size":2`,
				`"duration":`,
			},
		},
		{
			name:   "DELETE 404",
			method: http.MethodDelete,
			path:   "/api/recipes/x",
			status: http.StatusNotFound,
			wantInEntry: []string{
				`"method":"DELETE"`,
				`"status":404`,
				`"size":0`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := zerolog.New(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(l.WithContext(req.Context()))
			rec := httptest.NewRecorder()

			(&Handler{}).withLogging(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			for _, want := range tt.wantInEntry {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
