// Package module implements the profile module
package module

import (
	"github.com/go-chi/chi/v5"

	"sailormouth/internal/core/normalize"
	"sailormouth/internal/core/wordlist"
	"sailormouth/internal/modkit"
	profilehttp "sailormouth/internal/services/profile/http"
	"sailormouth/internal/services/profile/domain"
	"sailormouth/internal/services/profile/service"
)

// Module implements modkit.Module
type Module struct {
	prefix string
	opts   Options
	words  []string
	runner domain.RunnerPort
}

// New constructs the profile module. The target word list is loaded here so a missing
// or unreadable list fails before anything is fetched. Without WithPorts(domain.Ports)
// the record source is a reddit client built from config
func New(deps modkit.Deps, overrides Options, opts ...modkit.Option) (*Module, error) {
	s := modkit.Build(modkit.Settings{Prefix: "/profiles"}, opts...)
	ports := modkit.PortsAs[domain.Ports](s, "profile")

	cfg := FromConfig(deps.Cfg).merge(overrides)
	if ports.Source == nil {
		ports.Source = NewRedditSource(cfg.Reddit)
	}

	words, err := wordlist.Open(cfg.ListsDir, cfg.Dict)
	if err != nil {
		return nil, err
	}

	mode := normalize.ModeLower
	if cfg.Fold {
		mode = normalize.ModeFold
	}

	deps.Log.Debug().
		Str("dict", wordlist.Resolve(cfg.ListsDir, cfg.Dict)).
		Int("words", len(words)).
		Str("normalize", mode.String()).
		Msg("profile module ready")

	return &Module{
		prefix: s.Prefix,
		opts:   cfg,
		words:  words,
		runner: service.New(ports.Source, ports.Observer, service.Config{
			Limit: cfg.Limit,
			Words: words,
			Mode:  mode,
		}),
	}, nil
}

func (m *Module) Name() string   { return "profile" }
func (m *Module) Prefix() string { return m.prefix }

// Routes serves GET /{user} and POST /
func (m *Module) Routes(r chi.Router) { profilehttp.Register(r, m.runner) }

// Runner returns the profile runner
func (m *Module) Runner() domain.RunnerPort { return m.runner }

// Options returns the effective options after config and overrides
func (m *Module) Options() Options { return m.opts }

// Words returns the loaded default target word list
func (m *Module) Words() []string { return m.words }
