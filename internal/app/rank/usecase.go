package rank

import (
	"context"
	"fmt"
	"time"

	"meowshunt/internal/app/auth"
	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/hunting"
)

type UseCase struct {
	TxManager ports.TxManager
	Profiles  ports.ProfileRepository
	Catalog   ports.CatalogRepository
	Now       func() time.Time
}

// Execute moves the player to the highest rank their exp qualifies for. A
// player below every threshold keeps the rank they have.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	playerID, err := auth.RequirePlayer(req.PlayerID)
	if err != nil {
		return Response{}, err
	}
	nowFn := u.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var out Response
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		profile, err := u.Profiles.GetForUpdate(txCtx, playerID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		ranks, err := u.Catalog.ListRanks(txCtx)
		if err != nil {
			return fmt.Errorf("list ranks: %w", err)
		}
		out.RankID = profile.RankID

		best, ok := hunting.SelectRank(ranks, profile.Exp)
		if !ok {
			return nil
		}
		out.RankName = best.Name
		if profile.RankID != nil && *profile.RankID == best.ID {
			return nil
		}

		expected := profile.Version
		rid := best.ID
		profile.RankID = &rid
		profile.Version = expected + 1
		profile.UpdatedAt = nowFn().UTC()
		if err := u.Profiles.SaveWithVersion(txCtx, profile, expected); err != nil {
			return fmt.Errorf("save rank: %w", err)
		}
		out.Changed = true
		out.RankID = &rid
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
