package middleware

import (
	"net/http"

	"estatehub/config"
)

// CORSMiddleware answers preflights and stamps CORS headers. The allowed
// origin is the configured frontend URL; without one, any origin may call
// the API.
type CORSMiddleware struct {
	allowedOrigin string
}

func NewCORSMiddleware(cfg config.AppConfig) *CORSMiddleware {
	origin := cfg.FrontendURL
	if origin == "" {
		origin = "*"
	}
	return &CORSMiddleware{allowedOrigin: origin}
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", m.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if m.allowedOrigin != "*" {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}
