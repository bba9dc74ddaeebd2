// Package module mounts the meta endpoints
package module

import (
	"time"

	"github.com/go-chi/chi/v5"

	"sailormouth/internal/modkit"
	metahttp "sailormouth/internal/services/api/meta/http"
)

// ServiceName is reported by the health, version and service endpoints
const ServiceName = "sailormouth-api"

// Ports feed readiness checks and word list info from the composing binary
type Ports struct {
	Checks   []metahttp.Check
	WordList func() metahttp.WordListInfo
}

// Module implements modkit.Module
type Module struct {
	prefix string
	deps   metahttp.Deps
}

// New builds the meta module, mounted at /meta
func New(_ modkit.Deps, opts ...modkit.Option) *Module {
	s := modkit.Build(modkit.Settings{Prefix: "/meta"}, opts...)
	p := modkit.PortsAs[Ports](s, "meta")
	return &Module{
		prefix: s.Prefix,
		deps: metahttp.Deps{
			ServiceName: ServiceName,
			StartedAt:   time.Now(),
			Checks:      p.Checks,
			WordList:    p.WordList,
		},
	}
}

func (m *Module) Name() string        { return "meta" }
func (m *Module) Prefix() string      { return m.prefix }
func (m *Module) Routes(r chi.Router) { metahttp.Register(r, m.deps) }
