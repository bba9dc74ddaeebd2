// Package api provides the HTTP API for the application
package api

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"sailormouth/internal/core/normalize"
	"sailormouth/internal/platform/config"
	perr "sailormouth/internal/platform/errors"
	"sailormouth/internal/platform/logger"
	"sailormouth/internal/platform/metrics"
	phttp "sailormouth/internal/platform/net/http"

	"sailormouth/internal/modkit"
	"sailormouth/internal/modkit/httpkit"
	"sailormouth/internal/modkit/swaggerkit"

	metahttp "sailormouth/internal/services/api/meta/http"
	metamod "sailormouth/internal/services/api/meta/module"
	profiledomain "sailormouth/internal/services/profile/domain"
	profilemetrics "sailormouth/internal/services/profile/metrics"
	profilemod "sailormouth/internal/services/profile/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	Metrics        *metrics.Registry
	EnableSwagger  bool
	EnableProfiler bool
	Stack          httpkit.StackOptions

	// Profile overrides config driven profile options
	Profile profilemod.Options
	// Source replaces the reddit client, tests use it to stay offline
	Source profiledomain.SourcePort
}

// FromConfig reads the CORE_API_ keys
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_API_")
	return Options{
		Config:         cfg,
		EnableSwagger:  c.MayBool("SWAGGER", true),
		EnableProfiler: c.MayBool("PROFILER", false),
		Stack: httpkit.StackOptions{
			CORSOrigins: c.MayCSV("CORS_ORIGINS", nil),
			Timeout:     c.MayDuration("TIMEOUT", 60*time.Second),
			MaxInFlight: c.MayInt("MAX_IN_FLIGHT", 8),
			Slow:        c.MayDuration("SLOW", 0),
		},
	}
}

// Mount builds the modules and serves them under /api/v1 on r. Swagger, pprof and
// /metrics sit outside the versioned tree and only when enabled
func Mount(r chi.Router, opt Options) error {
	log := opt.Logger
	if log == nil {
		log = logger.Named("api")
	}
	deps := modkit.Deps{Log: *log, Cfg: opt.Config}

	ports := profiledomain.Ports{Source: opt.Source}
	if opt.Metrics != nil {
		ports.Observer = profilemetrics.NewRecorder(opt.Metrics.Registerer())
	}
	profile, err := profilemod.New(deps, opt.Profile, modkit.WithPorts(ports))
	if err != nil {
		return err
	}

	meta := metamod.New(deps, modkit.WithPorts(metamod.Ports{
		Checks: []metahttp.Check{{
			Name: "wordlist",
			Fn: func(context.Context) error {
				if len(profile.Words()) == 0 {
					return perr.WordListf("word list is empty")
				}
				return nil
			},
		}},
		WordList: func() metahttp.WordListInfo {
			o := profile.Options()
			mode := normalize.ModeLower
			if o.Fold {
				mode = normalize.ModeFold
			}
			return metahttp.WordListInfo{Dict: o.Dict, Words: len(profile.Words()), Normalize: mode.String()}
		},
	}))

	if opt.EnableSwagger {
		swaggerkit.Mount(r, "/api/v1")
	}
	if opt.EnableProfiler {
		r.Mount("/debug", chimw.Profiler())
	}
	if opt.Metrics != nil {
		r.Handle("/metrics", opt.Metrics.Handler())
	}

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(httpkit.Stack(opt.Stack)...)
		api.NotFound(phttp.NotFound)
		api.MethodNotAllowed(phttp.MethodNotAllowed)
		modkit.Mount(api, meta, profile)
	})

	log.Debug().
		Bool("swagger", opt.EnableSwagger).
		Bool("profiler", opt.EnableProfiler).
		Bool("metrics", opt.Metrics != nil).
		Msg("api mounted")
	return nil
}
