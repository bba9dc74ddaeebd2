// Package logger wraps zerolog. Output goes to stderr by default so the CLI report on
// stdout stays clean. Request and run ids ride on the context and are picked up by C
package logger

import (
	"context"
	"io"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is the project logger type
type Logger = zerolog.Logger

// Options configures a logger
type Options struct {
	Level   string // trace debug info warn error, unknown values mean info
	Format  string // console or json
	Service string
	Caller  bool
	NoColor bool
	Writer  io.Writer
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_SERVICE, LOG_CALLER and NO_COLOR.
// It reads the environment directly because config logs through this package
func FromEnv() Options {
	_, noColor := os.LookupEnv("NO_COLOR")
	caller, _ := strconv.ParseBool(os.Getenv("LOG_CALLER"))
	return Options{
		Level:   env("LOG_LEVEL", "info"),
		Format:  env("LOG_FORMAT", "console"),
		Service: env("LOG_SERVICE", ""),
		Caller:  caller,
		NoColor: noColor,
	}
}

func env(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return strings.ToLower(v)
	}
	return def
}

func init() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339Nano
}

// New builds a logger from opt without touching the process root
func New(opt Options) Logger {
	var w io.Writer = os.Stderr
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: opt.NoColor}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opt.Level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	c := zerolog.New(w).Level(lvl).With().Timestamp()
	if opt.Service != "" {
		c = c.Str("service", opt.Service)
	}
	if opt.Caller {
		c = c.Caller()
	}
	return c.Logger()
}

var root atomic.Pointer[Logger]

// Init replaces the process root logger
func Init(opt Options) {
	l := New(opt)
	root.Store(&l)
}

// Get returns the root logger, building it from the environment on first use
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	l := New(FromEnv())
	root.CompareAndSwap(nil, &l)
	return root.Load()
}

// Named returns a child of the root tagged with component
func Named(component string) *Logger {
	l := Get().With().Str("component", component).Logger()
	return &l
}

type ctxKey int

const (
	requestKey ctxKey = iota
	runKey
)

// WithRequest stores an HTTP request id on ctx
func WithRequest(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestKey, id)
}

// WithRun stores a profiling run id on ctx
func WithRun(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runKey, id)
}

// C returns the root logger tagged with the request and run ids found on ctx
func C(ctx context.Context) *Logger {
	c := Get().With()
	if id, _ := ctx.Value(requestKey).(string); id != "" {
		c = c.Str("request_id", id)
	}
	if id, _ := ctx.Value(runKey).(string); id != "" {
		c = c.Str("run_id", id)
	}
	l := c.Logger()
	return &l
}
