package ports

import (
	"time"

	"meowshunt/internal/domain/hunting"
)

type HuntMetrics interface {
	RecordOutcome(outcome hunting.Outcome, latency time.Duration)
	RecordRejected(reason string)
	RecordConflict()
	RecordFailure()
	RecordRefill(credited int)
}

type NopMetrics struct{}

func (NopMetrics) RecordOutcome(hunting.Outcome, time.Duration) {}
func (NopMetrics) RecordRejected(string)                        {}
func (NopMetrics) RecordConflict()                              {}
func (NopMetrics) RecordFailure()                               {}
func (NopMetrics) RecordRefill(int)                             {}
