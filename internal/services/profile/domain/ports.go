package domain

import "context"

// SourcePort yields up to limit records for user. Fewer is not an error
type SourcePort interface {
	Fetch(ctx context.Context, user string, limit int) ([]Record, error)
}

// RunnerPort is the external port for a profiling run
type RunnerPort interface {
	Run(ctx context.Context, in Input) (Result, error)
}

// ObserverPort receives one event per run. Optional
type ObserverPort interface {
	Observe(ev RunEvent)
}

// Ports are dependencies injected into the profile module
type Ports struct {
	Source   SourcePort   // required
	Observer ObserverPort // optional
}
