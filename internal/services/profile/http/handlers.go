// Package http provides http transport for profiles
package http

import (
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	perr "sailormouth/internal/platform/errors"
	phttp "sailormouth/internal/platform/net/http"
	"sailormouth/internal/services/profile/domain"
)

// Register mounts profile endpoints on the given router
func Register(r chi.Router, run domain.RunnerPort) {
	h := &handlers{run: run}

	// profile with the configured word list
	r.Get("/{user}", phttp.Serve(h.get))

	// profile with an optional custom word list in the body
	r.Post("/", phttp.ServeJSON(h.post))
}

type handlers struct{ run domain.RunnerPort }

// swagger:route GET /profiles/{user} Profiles profileGet
// @Summary Profile a user's recent comments
// @Tags Profiles
// @Produce json
// @Param user path string true "Reddit user name"
// @Param limit query int false "Comments to scan, at least 1"
// @Param sort query string false "inc or dec"
// @Param verbose query bool false "Include per-group breakdown"
// @Success 200 {object} domain.Result "ok"
// @Router /profiles/{user} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	q := r.URL.Query()
	in := domain.Input{
		User: chi.URLParam(r, "user"),
		Sort: q.Get("sort"),
	}
	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, perr.WithField(perr.InvalidArgf("limit must be an integer"), "limit")
		}
		in.Limit = n
	}
	if s := q.Get("verbose"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, perr.WithField(perr.InvalidArgf("verbose must be a boolean"), "verbose")
		}
		in.Verbose = v
	}
	return h.run.Run(r.Context(), in)
}

// swagger:route POST /profiles Profiles profilePost
// @Summary Profile a user with an optional custom word list
// @Tags Profiles
// @Accept json
// @Produce json
// @Param payload body domain.Input true "Run"
// @Success 200 {object} domain.Result "ok"
// @Router /profiles [post]
func (h *handlers) post(r *stdhttp.Request, in domain.Input) (any, error) {
	return h.run.Run(r.Context(), in)
}
