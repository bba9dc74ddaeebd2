// Package metrics records profiling runs as prometheus series
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	perr "sailormouth/internal/platform/errors"
	pmetrics "sailormouth/internal/platform/metrics"
	"sailormouth/internal/services/profile/domain"
)

// Recorder implements domain.ObserverPort
type Recorder struct {
	runs        *prometheus.CounterVec
	duration    prometheus.Histogram
	scanned     prometheus.Counter
	matched     prometheus.Counter
	occurrences prometheus.Counter
}

var _ domain.ObserverPort = (*Recorder)(nil)

// NewRecorder registers the profile series on reg
func NewRecorder(reg prometheus.Registerer) *Recorder {
	const sub = "profile"
	r := &Recorder{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: pmetrics.Namespace, Subsystem: sub,
			Name: "runs_total",
			Help: "Profiling runs by outcome",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: pmetrics.Namespace, Subsystem: sub,
			Name:    "run_duration_seconds",
			Help:    "Wall time of a profiling run including the fetch",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		scanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: pmetrics.Namespace, Subsystem: sub,
			Name: "records_scanned_total",
			Help: "Records scanned across runs",
		}),
		matched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: pmetrics.Namespace, Subsystem: sub,
			Name: "records_matched_total",
			Help: "Records with at least one target word",
		}),
		occurrences: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: pmetrics.Namespace, Subsystem: sub,
			Name: "occurrences_total",
			Help: "Word occurrences counted across runs",
		}),
	}
	reg.MustRegister(r.runs, r.duration, r.scanned, r.matched, r.occurrences)
	return r
}

// Observe satisfies domain.ObserverPort
func (r *Recorder) Observe(ev domain.RunEvent) {
	r.runs.WithLabelValues(Outcome(ev.Err)).Inc()
	r.duration.Observe(ev.Elapsed.Seconds())
	if ev.Err != nil {
		return
	}
	r.scanned.Add(float64(ev.Scanned))
	r.matched.Add(float64(ev.WithMatch))
	r.occurrences.Add(float64(ev.Occurrences))
}

// Outcome buckets an error into a low cardinality label
func Outcome(err error) string {
	if err == nil {
		return "ok"
	}
	switch perr.CodeOf(err) {
	case perr.ErrorCodeValidation, perr.ErrorCodeInvalidArgument:
		return "invalid"
	case perr.ErrorCodeNotFound:
		return "not_found"
	case perr.ErrorCodeSourceUnavailable, perr.ErrorCodeTooManyRequests, perr.ErrorCodeUnavailable:
		return "source_unavailable"
	case perr.ErrorCodeWordList:
		return "word_list"
	default:
		return "error"
	}
}
