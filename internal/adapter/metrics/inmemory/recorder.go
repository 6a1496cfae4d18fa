package inmemory

import (
	"maps"
	"sync"
	"time"

	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/hunting"
)

var _ ports.HuntMetrics = (*Recorder)(nil)

type Snapshot struct {
	HuntTotal      uint64            `json:"hunt_total"`
	HuntCatch      uint64            `json:"hunt_catch"`
	HuntMiss       uint64            `json:"hunt_miss"`
	HuntRejected   uint64            `json:"hunt_rejected"`
	HuntConflict   uint64            `json:"hunt_conflict"`
	HuntFailure    uint64            `json:"hunt_failure"`
	CatchRate      float64           `json:"catch_rate"`
	AvgLatencyMS   float64           `json:"avg_latency_ms"`
	EnergyCredited uint64            `json:"energy_credited"`
	RejectedBy     map[string]uint64 `json:"rejected_by_reason"`
}

type Recorder struct {
	mu         sync.Mutex
	catch      uint64
	miss       uint64
	conflict   uint64
	failure    uint64
	credited   uint64
	latency    time.Duration
	rejectedBy map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		rejectedBy: map[string]uint64{},
	}
}

func (r *Recorder) RecordOutcome(outcome hunting.Outcome, latency time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if outcome == hunting.OutcomeCatch {
		r.catch++
	} else {
		r.miss++
	}
	r.latency += latency
}

func (r *Recorder) RecordRejected(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rejectedBy[reason]++
}

func (r *Recorder) RecordConflict() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conflict++
}

func (r *Recorder) RecordFailure() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failure++
}

func (r *Recorder) RecordRefill(credited int) {
	if credited <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.credited += uint64(credited)
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	var rejected uint64
	for _, n := range r.rejectedBy {
		rejected += n
	}
	resolved := r.catch + r.miss
	out := Snapshot{
		HuntCatch:      r.catch,
		HuntMiss:       r.miss,
		HuntRejected:   rejected,
		HuntConflict:   r.conflict,
		HuntFailure:    r.failure,
		HuntTotal:      resolved + rejected + r.conflict + r.failure,
		EnergyCredited: r.credited,
		RejectedBy:     maps.Clone(r.rejectedBy),
	}
	if resolved > 0 {
		out.CatchRate = float64(r.catch) / float64(resolved)
		out.AvgLatencyMS = float64(r.latency.Microseconds()) / 1000 / float64(resolved)
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
