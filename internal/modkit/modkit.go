// Package modkit is the wiring shared by the API modules. A module is built from Deps
// plus Options, owns a route prefix and mounts its handlers under it
package modkit

import (
	"fmt"
	"strings"

	"sailormouth/internal/platform/config"
	"sailormouth/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Deps are the process wide dependencies handed to every module
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
}

// Module is what the API composes
type Module interface {
	Name() string
	// Prefix is the module's route root, e.g. "/profiles"
	Prefix() string
	// Routes registers handlers relative to Prefix
	Routes(r chi.Router)
}

// Settings are the resolved options of a module
type Settings struct {
	Prefix string
	// Ports are the collaborators the caller injected, typed by the module
	Ports any
}

// Option adjusts Settings
type Option func(*Settings)

// WithPorts injects collaborators. The module decides which type it accepts
func WithPorts[T any](p T) Option { return func(s *Settings) { s.Ports = p } }

// Build applies opts over defaults and normalizes the prefix to "/x" form.
// It panics on an empty prefix since that is a wiring bug
func Build(defaults Settings, opts ...Option) Settings {
	s := defaults
	for _, o := range opts {
		o(&s)
	}
	s.Prefix = "/" + strings.Trim(strings.TrimSpace(s.Prefix), "/")
	if s.Prefix == "/" {
		panic("modkit: module prefix is required")
	}
	return s
}

// PortsAs returns the injected ports as T, or the zero T when none were given.
// Ports of another type panic naming module
func PortsAs[T any](s Settings, module string) T {
	var zero T
	if s.Ports == nil {
		return zero
	}
	p, ok := s.Ports.(T)
	if !ok {
		panic(fmt.Sprintf("%s module: WithPorts got %T, want %T", module, s.Ports, zero))
	}
	return p
}

// Mount routes every module under its prefix on r
func Mount(r chi.Router, mods ...Module) {
	for _, m := range mods {
		r.Route(m.Prefix(), m.Routes)
	}
}
