// Package metrics owns the process prometheus registry and its scrape handler
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric this binary exports
const Namespace = "sailormouth"

// Registry wraps a private prometheus registry so tests never touch the global one
type Registry struct {
	reg *prometheus.Registry
}

// New returns a registry. withRuntime adds the go and process collectors
func New(withRuntime bool) *Registry {
	reg := prometheus.NewRegistry()
	if withRuntime {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return &Registry{reg: reg}
}

// Registerer exposes the registry for collectors
func (r *Registry) Registerer() prometheus.Registerer { return r.reg }

// Gatherer exposes the registry for scrapes and tests
func (r *Registry) Gatherer() prometheus.Gatherer { return r.reg }

// Handler serves the text exposition format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}
