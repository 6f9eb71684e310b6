package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"estatehub/config"

	"github.com/stretchr/testify/assert"
)

func TestCORSMiddlewareUsesConfiguredOrigin(t *testing.T) {
	m := NewCORSMiddleware(config.AppConfig{FrontendURL: "https://app.estatehub.ng"})

	called := false
	handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil))

	assert.True(t, called)
	assert.Equal(t, "https://app.estatehub.ng", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "Origin", rec.Header().Get("Vary"))
}

func TestCORSMiddlewareDefaultsToAnyOrigin(t *testing.T) {
	m := NewCORSMiddleware(config.AppConfig{})

	handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSMiddlewareShortCircuitsPreflight(t *testing.T) {
	m := NewCORSMiddleware(config.AppConfig{FrontendURL: "https://app.estatehub.ng"})

	handler := m.Handle(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the next handler")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/v1/bookings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}
