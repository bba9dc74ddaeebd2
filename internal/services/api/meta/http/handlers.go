// Package http serves liveness, readiness and build information
package http

import (
	"context"
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"sailormouth/internal/core/version"
	phttp "sailormouth/internal/platform/net/http"
)

// ReadyTimeout bounds all readiness checks of one request
const ReadyTimeout = 2 * time.Second

// Check is one named readiness condition
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// WordListInfo describes the default word list of a profile run
type WordListInfo struct {
	Dict      string `json:"dict"      example:"bad_words.txt"`
	Words     int    `json:"words"     example:"32"`
	Normalize string `json:"normalize" example:"lower"`
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Checks      []Check
	// WordList is optional, /wordlist is only served when set
	WordList func() WordListInfo
}

// HealthResponse answers /health
type HealthResponse struct {
	OK      bool   `json:"ok"      example:"true"`
	Service string `json:"service" example:"sailormouth-api"`
	Started string `json:"started" example:"2026-10-16T13:00:00Z"`
	Now     string `json:"now"     example:"2026-10-16T13:05:00Z"`
}

// ReadyCheck is the outcome of one Check, Status is ok or fail
type ReadyCheck struct {
	Name   string `json:"name"            example:"wordlist"`
	Status string `json:"status"          example:"ok"`
	Error  string `json:"error,omitempty" example:"word list is empty"`
}

// ReadyResponse is fail when any check failed
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"`
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-10-16T13:05:00Z"`
}

// ServiceResponse answers /service, Uptime is in seconds
type ServiceResponse struct {
	Name    string `json:"name"    example:"sailormouth-api"`
	Started string `json:"started" example:"2026-10-16T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

type meta struct {
	Deps
	clock func() time.Time
}

// Register serves the meta endpoints on r
func Register(r chi.Router, d Deps) {
	m := meta{Deps: d, clock: time.Now}
	r.Get("/health", phttp.Serve(m.health))
	r.Get("/ready", phttp.Serve(m.ready))
	r.Get("/version", phttp.Serve(m.version))
	r.Get("/service", phttp.Serve(m.service))
	if d.WordList != nil {
		r.Get("/wordlist", phttp.Serve(m.wordlist))
	}
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// @Summary Liveness
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /meta/health [get]
func (m meta) health(*stdhttp.Request) (any, error) {
	return HealthResponse{OK: true, Service: m.ServiceName, Started: stamp(m.StartedAt), Now: stamp(m.clock())}, nil
}

// @Summary Readiness, runs every registered check
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse
// @Router /meta/ready [get]
func (m meta) ready(r *stdhttp.Request) (any, error) {
	ctx, cancel := context.WithTimeout(r.Context(), ReadyTimeout)
	defer cancel()

	res := ReadyResponse{Status: "ok", Checks: make([]ReadyCheck, 0, len(m.Checks))}
	for _, c := range m.Checks {
		rc := ReadyCheck{Name: c.Name, Status: "ok"}
		if err := c.Fn(ctx); err != nil {
			rc.Status, rc.Error = "fail", err.Error()
			res.Status = "fail"
		}
		res.Checks = append(res.Checks, rc)
	}
	res.Now = stamp(m.clock())
	return res, nil
}

// @Summary Build information
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo
// @Router /meta/version [get]
func (m meta) version(*stdhttp.Request) (any, error) {
	return version.Info(m.ServiceName), nil
}

// @Summary Service name and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse
// @Router /meta/service [get]
func (m meta) service(*stdhttp.Request) (any, error) {
	return ServiceResponse{
		Name:    m.ServiceName,
		Started: stamp(m.StartedAt),
		Uptime:  int64(m.clock().Sub(m.StartedAt) / time.Second),
	}, nil
}

// @Summary Default word list
// @Tags Meta
// @Produce json
// @Success 200 {object} WordListInfo
// @Router /meta/wordlist [get]
func (m meta) wordlist(*stdhttp.Request) (any, error) {
	return m.WordList(), nil
}
