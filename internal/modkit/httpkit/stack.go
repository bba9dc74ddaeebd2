// Package httpkit assembles the middleware stack the versioned API runs behind
package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"sailormouth/internal/platform/net/middleware"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// StackOptions tunes Stack. Zero values fall back to defaults
type StackOptions struct {
	// CORSOrigins allowed to call the API, empty disables cross-origin access
	CORSOrigins []string
	// Timeout bounds a request, profile runs fetch upstream so keep it generous
	Timeout time.Duration
	// MaxInFlight caps concurrent requests, 0 means unlimited
	MaxInFlight int
	// Slow marks access log lines as warn at or above this latency
	Slow time.Duration
}

// Stack returns the API middleware in mount order
func Stack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 60 * time.Second
	}
	mw := []func(http.Handler) http.Handler{
		chimw.RequestID,
		chimw.RealIP,
		middleware.RequestLogger,
		middleware.AccessLog(o.Slow),
		middleware.Recover,
		chimw.NoCache,
		middleware.CORS(o.CORSOrigins),
		chimw.Compress(flate.BestSpeed),
		chimw.StripSlashes,
	}
	if o.MaxInFlight > 0 {
		// excess callers queue briefly, then get a 429
		mw = append(mw, chimw.ThrottleBacklog(o.MaxInFlight, o.MaxInFlight*4, 30*time.Second))
	}
	return append(mw, chimw.Timeout(o.Timeout))
}
