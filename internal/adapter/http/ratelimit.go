package httpadapter

import (
	"context"
	"sync"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"golang.org/x/time/rate"
)

const limiterIdleTTL = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// PlayerLimiter keeps one token bucket per player. Buckets idle for longer
// than limiterIdleTTL are swept on the next sweep pass.
type PlayerLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	entries   map[string]*limiterEntry
	lastSweep time.Time
	now       func() time.Time
}

func NewPlayerLimiter(perSecond float64, burst int) *PlayerLimiter {
	if burst < 1 {
		burst = 1
	}
	return &PlayerLimiter{
		limit:   rate.Limit(perSecond),
		burst:   burst,
		entries: make(map[string]*limiterEntry),
		now:     time.Now,
	}
}

func (l *PlayerLimiter) Allow(playerID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if now.Sub(l.lastSweep) > limiterIdleTTL {
		for id, e := range l.entries {
			if now.Sub(e.lastSeen) > limiterIdleTTL {
				delete(l.entries, id)
			}
		}
		l.lastSweep = now
	}
	e, ok := l.entries[playerID]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.entries[playerID] = e
	}
	e.lastSeen = now
	return e.limiter.AllowN(now, 1)
}

func (l *PlayerLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// rateLimitMiddleware must run after authMiddleware.
func rateLimitMiddleware(l *PlayerLimiter) app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		if l == nil {
			ctx.Next(c)
			return
		}
		id, _ := identityFrom(ctx)
		if !l.Allow(id.PlayerID) {
			writeErrorBody(ctx, consts.StatusTooManyRequests, CodeRateLimited, nil)
			ctx.Abort()
			return
		}
		ctx.Next(c)
	}
}
