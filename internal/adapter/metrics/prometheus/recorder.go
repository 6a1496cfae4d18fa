// Package prometheus exports hunt and cache metrics in the prometheus
// exposition format.
package prometheus

import (
	"fmt"
	"time"

	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/hunting"

	"github.com/prometheus/client_golang/prometheus"
)

const DefaultNamespace = "meowshunt"

var _ ports.HuntMetrics = (*Recorder)(nil)

type Recorder struct {
	HuntsTotal     *prometheus.CounterVec
	HuntDuration   prometheus.Histogram
	RejectedTotal  *prometheus.CounterVec
	ConflictTotal  prometheus.Counter
	FailureTotal   prometheus.Counter
	EnergyCredited prometheus.Counter
	CacheHitTotal  *prometheus.CounterVec
	CacheMissTotal *prometheus.CounterVec
}

// New builds the collectors and registers them with reg.
func New(namespace string, reg prometheus.Registerer) (*Recorder, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	r := &Recorder{
		HuntsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hunts_total",
			Help:      "Resolved hunts by outcome.",
		}, []string{"outcome"}),
		HuntDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "hunt_duration_seconds",
			Help:      "Time to resolve an accepted hunt, transaction included.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		RejectedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hunts_rejected_total",
			Help:      "Hunts refused by a precondition, by reason.",
		}, []string{"reason"}),
		ConflictTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hunt_conflicts_total",
			Help:      "Hunts aborted by an optimistic-lock conflict.",
		}),
		FailureTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hunt_failures_total",
			Help:      "Hunts aborted by an unexpected error.",
		}),
		EnergyCredited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "energy_credited_total",
			Help:      "Energy points credited by regeneration.",
		}),
		CacheHitTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_cache_hits_total",
			Help:      "Catalog cache hits by entry kind.",
		}, []string{"kind"}),
		CacheMissTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_cache_misses_total",
			Help:      "Catalog cache misses by entry kind.",
		}, []string{"kind"}),
	}
	for _, c := range []prometheus.Collector{
		r.HuntsTotal, r.HuntDuration, r.RejectedTotal, r.ConflictTotal,
		r.FailureTotal, r.EnergyCredited, r.CacheHitTotal, r.CacheMissTotal,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return r, nil
}

func (r *Recorder) RecordOutcome(outcome hunting.Outcome, latency time.Duration) {
	r.HuntsTotal.WithLabelValues(string(outcome)).Inc()
	r.HuntDuration.Observe(latency.Seconds())
}

func (r *Recorder) RecordRejected(reason string) {
	r.RejectedTotal.WithLabelValues(reason).Inc()
}

func (r *Recorder) RecordConflict() { r.ConflictTotal.Inc() }

func (r *Recorder) RecordFailure() { r.FailureTotal.Inc() }

func (r *Recorder) RecordRefill(credited int) {
	if credited > 0 {
		r.EnergyCredited.Add(float64(credited))
	}
}

func (r *Recorder) RecordCacheHit(kind string) {
	r.CacheHitTotal.WithLabelValues(kind).Inc()
}

func (r *Recorder) RecordCacheMiss(kind string) {
	r.CacheMissTotal.WithLabelValues(kind).Inc()
}

// Tee fans every call out to each recorder in order.
type Tee []ports.HuntMetrics

func (t Tee) RecordOutcome(outcome hunting.Outcome, latency time.Duration) {
	for _, m := range t {
		m.RecordOutcome(outcome, latency)
	}
}

func (t Tee) RecordRejected(reason string) {
	for _, m := range t {
		m.RecordRejected(reason)
	}
}

func (t Tee) RecordConflict() {
	for _, m := range t {
		m.RecordConflict()
	}
}

func (t Tee) RecordFailure() {
	for _, m := range t {
		m.RecordFailure()
	}
}

func (t Tee) RecordRefill(credited int) {
	for _, m := range t {
		m.RecordRefill(credited)
	}
}
