package location

import (
	"context"
	"errors"
	"fmt"

	"meowshunt/internal/app/auth"
	"meowshunt/internal/app/ports"
	"meowshunt/internal/app/refill"
	"meowshunt/internal/domain/hunting"

	"golang.org/x/sync/errgroup"
)

const listConcurrency = 8

var ErrLocationLocked = errors.New("location locked")

type ListUseCase struct {
	Profiles ports.ProfileRepository
	Catalog  ports.CatalogRepository
}

// Execute loads every location with its spawn table and shop. Reads run
// concurrently outside a transaction; catalog data does not change at
// runtime.
func (u ListUseCase) Execute(ctx context.Context, req ListRequest) (ListResponse, error) {
	playerID, err := auth.RequirePlayer(req.PlayerID)
	if err != nil {
		return ListResponse{}, err
	}

	var (
		locations []hunting.Location
		profile   hunting.Profile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		locations, err = u.Catalog.ListLocations(gctx)
		return err
	})
	g.Go(func() error {
		p, err := u.Profiles.Get(gctx, playerID)
		if errors.Is(err, ports.ErrNotFound) {
			profile = hunting.Profile{ID: playerID}
			return nil
		}
		profile = p
		return err
	})
	if err := g.Wait(); err != nil {
		return ListResponse{}, fmt.Errorf("load locations: %w", err)
	}

	views := make([]LocationView, len(locations))
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i, loc := range locations {
		views[i] = LocationView{
			Location: loc,
			Unlocked: loc.UnlockedFor(profile.Exp),
			Current:  profile.CurrentLocationID != nil && *profile.CurrentLocationID == loc.ID,
		}
		g.Go(func() error {
			spawns, err := u.Catalog.ListSpawns(gctx, loc.ID)
			if err != nil {
				return err
			}
			views[i].Meows = toMeowViews(spawns)
			return nil
		})
		g.Go(func() error {
			items, err := u.Catalog.ListShopItems(gctx, loc.ID)
			if err != nil {
				return err
			}
			if items == nil {
				items = []hunting.Item{}
			}
			views[i].ShopItems = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ListResponse{}, fmt.Errorf("load location details: %w", err)
	}
	return ListResponse{CurrentLocationID: profile.CurrentLocationID, Locations: views}, nil
}

func toMeowViews(spawns []hunting.Spawn) []MeowView {
	out := make([]MeowView, 0, len(spawns))
	for _, s := range spawns {
		out = append(out, MeowView{
			ID:          s.Meow.ID,
			Name:        s.Meow.Name,
			ImageURL:    s.Meow.ImageURL,
			Rarity:      s.Meow.Rarity,
			SpawnChance: s.SpawnChance,
		})
	}
	return out
}

type SelectUseCase struct {
	TxManager ports.TxManager
	Refill    refill.UseCase
	Profiles  ports.ProfileRepository
	Catalog   ports.CatalogRepository
}

// Execute travels to a location, or clears the selection when LocationID is
// nil.
func (u SelectUseCase) Execute(ctx context.Context, req SelectRequest) (SelectResponse, error) {
	playerID, err := auth.RequirePlayer(req.PlayerID)
	if err != nil {
		return SelectResponse{}, err
	}
	now := u.Refill.Clock()

	var out SelectResponse
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		profile, err := u.Refill.LoadOrCreate(txCtx, playerID, req.Username, now)
		if err != nil {
			return err
		}
		if req.LocationID != nil {
			loc, err := u.Catalog.GetLocation(txCtx, *req.LocationID)
			if err != nil {
				return fmt.Errorf("load location: %w", err)
			}
			if !loc.UnlockedFor(profile.Exp) {
				return ErrLocationLocked
			}
			id := loc.ID
			profile.CurrentLocationID = &id
		} else {
			profile.CurrentLocationID = nil
		}

		expected := profile.Version
		profile.Version = expected + 1
		profile.UpdatedAt = now
		if err := u.Profiles.SaveWithVersion(txCtx, profile, expected); err != nil {
			return fmt.Errorf("save location: %w", err)
		}
		out.CurrentLocationID = profile.CurrentLocationID
		return nil
	})
	if err != nil {
		return SelectResponse{}, err
	}
	return out, nil
}
