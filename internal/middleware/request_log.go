package middleware

import (
	"net/http"
	"time"

	"animal-training-api/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestLog escribe una línea por request con status, bytes y latencia.
func RequestLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     status,
				"bytes":      ww.BytesWritten(),
				"latency_ms": time.Since(start).Milliseconds(),
				"request_id": chimw.GetReqID(r.Context()),
				"remote":     r.RemoteAddr,
			}

			switch {
			case status >= http.StatusInternalServerError:
				log.Error("http request", fields)
			case status >= http.StatusBadRequest:
				log.Warn("http request", fields)
			default:
				log.Info("http request", fields)
			}
		})
	}
}
