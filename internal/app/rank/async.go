package rank

import (
	"context"
	"fmt"
	"time"

	"meowshunt/internal/app/ports"
	"meowshunt/internal/logging"

	"github.com/panjf2000/ants/v2"
)

const (
	DefaultPoolSize = 8
	DefaultTimeout  = 5 * time.Second
)

var _ ports.RankDispatcher = (*AsyncRecalculator)(nil)

// AsyncRecalculator runs rank recalculations on a bounded pool, detached from
// the request that triggered them. Work that cannot be scheduled is dropped.
type AsyncRecalculator struct {
	uc      UseCase
	pool    *ants.Pool
	timeout time.Duration
	log     logging.Logger
}

func NewAsyncRecalculator(uc UseCase, size int, timeout time.Duration, logger logging.Logger) (*AsyncRecalculator, error) {
	if size <= 0 {
		size = DefaultPoolSize
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	log := logging.OrNop(logger).Named("rank")
	pool, err := ants.NewPool(size,
		ants.WithNonblocking(true),
		ants.WithPanicHandler(func(p any) {
			log.Error("rank recalculation panicked", "panic", fmt.Sprint(p))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create rank pool: %w", err)
	}
	return &AsyncRecalculator{uc: uc, pool: pool, timeout: timeout, log: log}, nil
}

func (a *AsyncRecalculator) Dispatch(playerID string) {
	err := a.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()
		resp, err := a.uc.Execute(ctx, Request{PlayerID: playerID})
		if err != nil {
			a.log.Warn("rank recalculation failed", "player_id", playerID, "err", err)
			return
		}
		if resp.Changed {
			a.log.Info("rank changed", "player_id", playerID, "rank", resp.RankName)
		}
	})
	if err != nil {
		a.log.Warn("rank recalculation dropped", "player_id", playerID, "err", err)
	}
}

// Close waits up to timeout for queued recalculations to finish.
func (a *AsyncRecalculator) Close(timeout time.Duration) error {
	return a.pool.ReleaseTimeout(timeout)
}
