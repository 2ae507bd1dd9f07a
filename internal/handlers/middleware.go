package handlers

import (
	"net/http"

	"ordify/internal/common/logger"
)

// RequestLogger tags every request with a correlation id and logs it.
func RequestLogger(lg *logger.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = logger.NewRequestID()
		}
		w.Header().Set("X-Request-ID", id)
		lg.WithRequest(id).Debug("http_request", map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
		})
		next.ServeHTTP(w, r)
	})
}
