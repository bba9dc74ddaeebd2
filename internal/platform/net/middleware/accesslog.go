// Package middleware holds the in-house middlewares of the API stack. Everything else
// in the stack comes straight from chi
package middleware

import (
	"net/http"
	"time"

	"sailormouth/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// DefaultSlow is where the access log switches to warn. A profile request includes the
// upstream reddit fetch so this sits well above a plain handler
const DefaultSlow = 5 * time.Second

// RequestLogger tags the request context with chi's request id so logger.C picks it
// up. Mount after chi's RequestID
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithRequest(r.Context(), chimw.GetReqID(r.Context()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AccessLog writes one line per request, at warn level when it took slow or longer.
// slow <= 0 means DefaultSlow
func AccessLog(slow time.Duration) func(http.Handler) http.Handler {
	if slow <= 0 {
		slow = DefaultSlow
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			took := time.Since(start)

			log := logger.C(r.Context())
			ev := log.Info()
			if took >= slow {
				ev = log.Warn()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			ev.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", status).
				Int("bytes", ww.BytesWritten()).
				Dur("took", took).
				Msg("request")
		})
	}
}
