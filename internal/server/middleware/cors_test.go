package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		config     CORSConfig
		origin     string
		wantOrigin string
	}{
		{"allow all", CORSConfig{AllowAll: true}, "http://a.test", "*"},
		{"empty list allows all", CORSConfig{}, "http://a.test", "*"},
		{"listed origin echoed", CORSConfig{AllowedOrigins: []string{"http://a.test"}}, "http://a.test", "http://a.test"},
		{"unlisted origin", CORSConfig{AllowedOrigins: []string{"http://a.test"}}, "http://b.test", ""},
		{"wildcard entry", CORSConfig{AllowedOrigins: []string{"http://a.test", "*"}}, "http://b.test", "http://b.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/quotes", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()

			CORS(tt.config)(okHandler()).ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	called := false
	handler := CORS(DefaultCORSConfig())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/quotes", nil)
	req.Header.Set("Origin", "http://a.test")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, X-Request-ID", w.Header().Get("Access-Control-Allow-Headers"))
}
