package httpadapter

import (
	"context"
	"strings"
	"time"

	"meowshunt/internal/app/auth"
	"meowshunt/internal/logging"

	"github.com/cloudwego/hertz/pkg/app"
)

const identityKey = "meowshunt.identity"

func (h Handler) authMiddleware() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		if string(ctx.Method()) == "OPTIONS" {
			ctx.Next(c)
			return
		}
		id, err := h.AuthUC.Execute(c, auth.VerifyRequest{Authorization: string(ctx.GetHeader("Authorization"))})
		if err != nil {
			writeError(ctx, err)
			ctx.Abort()
			return
		}
		ctx.Set(identityKey, id)
		ctx.Next(c)
	}
}

func identityFrom(ctx *app.RequestContext) (auth.Identity, bool) {
	v, ok := ctx.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}

// mustIdentity returns the zero identity when the auth middleware did not
// run. Use cases reject an empty player id as not authenticated.
func mustIdentity(ctx *app.RequestContext) auth.Identity {
	id, _ := identityFrom(ctx)
	return id
}

func accessLogMiddleware(logger logging.Logger) app.HandlerFunc {
	log := logging.OrNop(logger).Named("http")
	return func(c context.Context, ctx *app.RequestContext) {
		start := time.Now()
		ctx.Next(c)
		status := ctx.Response.StatusCode()
		kv := []any{
			"method", string(ctx.Method()),
			"path", string(ctx.Path()),
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if id, ok := identityFrom(ctx); ok {
			kv = append(kv, "player_id", id.PlayerID)
		}
		switch {
		case status >= 500:
			log.ErrorContext(c, "request failed", kv...)
		case status >= 400 && !strings.HasPrefix(string(ctx.Path()), "/ops"):
			log.InfoContext(c, "request rejected", kv...)
		default:
			log.DebugContext(c, "request served", kv...)
		}
	}
}
