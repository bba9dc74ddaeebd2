// @title         sailormouth API
// @version       1.0
// @description   Read only word usage profiles for reddit users

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"sailormouth/internal/platform/config"
	"sailormouth/internal/platform/logger"
	"sailormouth/internal/platform/metrics"
	phttp "sailormouth/internal/platform/net/http"

	"sailormouth/internal/services/api"
)

func main() {
	logger.Init(logger.FromEnv())
	l := logger.Named("main")

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opt := api.FromConfig(root)
	opt.Logger = logger.Named("api")
	if apiCfg.MayBool("METRICS", true) {
		opt.Metrics = metrics.New(true)
	}

	r := chi.NewRouter()
	if err := api.Mount(r, opt); err != nil {
		l.Fatal().Err(err).Msg("api mount failed")
	}

	srv := phttp.NewServer(
		apiCfg.MayPort("PORT", ":4000"),
		r,
		apiCfg.MayDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	)
	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("bye")
}
