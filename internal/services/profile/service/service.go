// Package service implements the profile runner
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sailormouth/internal/core/normalize"
	"sailormouth/internal/core/report"
	perr "sailormouth/internal/platform/errors"
	"sailormouth/internal/platform/logger"
	"sailormouth/internal/platform/net/http/bind"
	"sailormouth/internal/services/profile/domain"
)

// Config holds runner settings
type Config struct {
	// Limit is used when Input.Limit is zero
	Limit int
	// Words is the default target word list
	Words []string
	// Mode selects how bodies and words are normalized
	Mode normalize.Mode
}

// Service runs profiles against a record source
type Service struct {
	src  domain.SourcePort
	obs  domain.ObserverPort
	cfg  Config
	norm *normalize.Normalizer
	pipe *Pipeline

	// seams
	now   func() time.Time
	newID func() string
}

// New constructs the runner. obs may be nil
func New(src domain.SourcePort, obs domain.ObserverPort, cfg Config) *Service {
	if cfg.Limit <= 0 {
		cfg.Limit = 100
	}
	norm := normalize.New(cfg.Mode)
	return &Service{
		src:   src,
		obs:   obs,
		cfg:   cfg,
		norm:  norm,
		pipe:  NewPipeline(norm),
		now:   time.Now,
		newID: func() string { return uuid.NewString() },
	}
}

// Run validates in, fetches records, scans them and builds the report.
// A source failure aborts the run; there are no partial results
func (s *Service) Run(ctx context.Context, in domain.Input) (res domain.Result, err error) {
	start := s.now()
	runID := s.newID()
	ctx = logger.WithRun(ctx, runID)
	log := logger.C(ctx)

	ev := domain.RunEvent{RunID: runID, User: in.User}
	defer func() {
		ev.Elapsed = s.now().Sub(start)
		ev.Err = err
		if s.obs != nil {
			s.obs.Observe(ev)
		}
	}()

	if err := bind.Struct(in); err != nil {
		return domain.Result{}, err
	}
	mode, err := report.ParseSortMode(in.Sort)
	if err != nil {
		return domain.Result{}, err
	}
	limit := in.Limit
	if limit <= 0 {
		limit = s.cfg.Limit
	}

	if limit > domain.DocumentedLimit {
		log.Debug().Int("limit", limit).Msg("limit above what reddit usually serves, the source may stop early")
	}

	raw := s.cfg.Words
	if len(in.Words) > 0 {
		raw = in.Words
	}
	words := s.norm.Words(raw)
	if len(words) == 0 {
		return domain.Result{}, perr.WordListf("target word list is empty")
	}

	log.Debug().Str("user", in.User).Int("limit", limit).Int("words", len(words)).Str("sort", mode.String()).Msg("profile run starting")

	records, err := s.src.Fetch(ctx, in.User, limit)
	if err != nil {
		log.Warn().Err(err).Str("user", in.User).Bool("retryable", perr.Retryable(err)).Msg("profile fetch failed")
		if perr.IsCode(err, perr.ErrorCodeNotFound) || perr.IsCode(err, perr.ErrorCodeSourceUnavailable) {
			return domain.Result{}, err
		}
		return domain.Result{}, perr.Wrapf(err, perr.ErrorCodeSourceUnavailable, "fetch records for %s", in.User)
	}

	agg, sum := s.pipe.Scan(records, words, limit)
	snap := agg.Snapshot()
	rep := report.Build(snap, sum, mode, in.Verbose)

	ev.Scanned = sum.RecordsScanned
	ev.WithMatch = sum.RecordsWithMatch
	ev.Groups = len(snap)
	ev.Occurrences = snap.Total()

	log.Info().
		Str("user", in.User).
		Int("scanned", sum.RecordsScanned).
		Int("with_match", sum.RecordsWithMatch).
		Int("groups", len(snap)).
		Int("occurrences", ev.Occurrences).
		Dur("elapsed", s.now().Sub(start)).
		Msg("profile run complete")

	return domain.Result{
		RunID:  runID,
		User:   in.User,
		Words:  len(words),
		Mode:   s.norm.Mode().String(),
		Report: rep,
	}, nil
}
