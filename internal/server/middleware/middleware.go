package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"webhookd/internal/server/response"
)

func Logging(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		handler.ServeHTTP(w, r)
		slog.Info(
			"request",
			slog.String("method", r.Method),
			slog.String("url", r.URL.Path),
			slog.Duration("time", time.Since(start)),
		)
	})
}

// Auth rejects requests whose access_token header does not match the shared
// webhook secret. An empty secret disables the check.
func Auth(secret string, handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if secret != "" && r.Header.Get("access_token") != secret {
			response.WriteError(w, http.StatusForbidden,
				fmt.Errorf("forbidden: invalid access token"))
			return
		}
		handler.ServeHTTP(w, r)
	})
}
