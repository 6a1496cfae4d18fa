package refill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"meowshunt/internal/app/auth"
	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/energy"
	"meowshunt/internal/domain/hunting"
)

// Onboarder provisions whatever a freshly created profile starts with. It
// runs inside the creating transaction.
type Onboarder interface {
	Onboard(txCtx context.Context, profile hunting.Profile) error
}

type UseCase struct {
	TxManager ports.TxManager
	Profiles  ports.ProfileRepository
	Catalog   ports.CatalogRepository
	Policy    energy.Policy
	Onboard   Onboarder
	Metrics   ports.HuntMetrics
	Now       func() time.Time
}

// Clock returns the current time in UTC.
func (u UseCase) Clock() time.Time {
	if u.Now == nil {
		return time.Now().UTC()
	}
	return u.Now().UTC()
}

// Execute credits any energy earned since the last refill.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	playerID, err := auth.RequirePlayer(req.PlayerID)
	if err != nil {
		return Response{}, err
	}
	now := u.Clock()

	var out Response
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		profile, err := u.LoadOrCreate(txCtx, playerID, req.Username, now)
		if err != nil {
			return err
		}
		profile, credited, err := u.RefillInTx(txCtx, profile, now)
		if err != nil {
			return err
		}
		out = Response{Success: true, NewEnergy: profile.Energy, Credited: credited}
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	if out.Credited > 0 && u.Metrics != nil {
		u.Metrics.RecordRefill(out.Credited)
	}
	return out, nil
}

// LoadOrCreate locks the player's profile, creating it with starting values
// on first access. It must run inside a transaction.
func (u UseCase) LoadOrCreate(txCtx context.Context, playerID, username string, now time.Time) (hunting.Profile, error) {
	profile, err := u.Profiles.GetForUpdate(txCtx, playerID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, ports.ErrNotFound) {
		return hunting.Profile{}, fmt.Errorf("load profile: %w", err)
	}

	var lowest *hunting.Rank
	if u.Catalog != nil {
		ranks, err := u.Catalog.ListRanks(txCtx)
		if err != nil {
			return hunting.Profile{}, fmt.Errorf("list ranks: %w", err)
		}
		if r, ok := hunting.LowestRank(ranks); ok {
			lowest = &r
		}
	}
	profile = hunting.NewProfile(playerID, u.Policy.OrDefault().Max, lowest, now)
	profile.Username = username
	profile.Version = 1
	if err := u.Profiles.Create(txCtx, profile); err != nil {
		if !errors.Is(err, ports.ErrConflict) {
			return hunting.Profile{}, fmt.Errorf("create profile: %w", err)
		}
		// Lost the race to another first request.
		return u.Profiles.GetForUpdate(txCtx, playerID)
	}
	if u.Onboard != nil {
		if err := u.Onboard.Onboard(txCtx, profile); err != nil {
			return hunting.Profile{}, fmt.Errorf("onboard profile: %w", err)
		}
	}
	return profile, nil
}

// RefillInTx applies regeneration to a profile already locked by the caller
// and persists it when anything changed. It returns the credited amount.
func (u UseCase) RefillInTx(txCtx context.Context, profile hunting.Profile, now time.Time) (hunting.Profile, int, error) {
	policy := u.Policy.OrDefault()
	clamped := policy.Clamp(profile.Energy)
	r := policy.Apply(profile.LastEnergyRefill, clamped, now)
	if !r.Changed() && clamped == profile.Energy {
		return profile, 0, nil
	}

	expected := profile.Version
	profile.Energy = r.Energy
	profile.LastEnergyRefill = r.LastRefill
	profile.Version = expected + 1
	profile.UpdatedAt = now
	if err := u.Profiles.SaveWithVersion(txCtx, profile, expected); err != nil {
		return hunting.Profile{}, 0, fmt.Errorf("save refill: %w", err)
	}
	return profile, r.Credited, nil
}
