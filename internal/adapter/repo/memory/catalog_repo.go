package memory

import (
	"context"
	"sort"

	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/hunting"
)

type CatalogRepo struct {
	store *Store
}

func NewCatalogRepo(store *Store) CatalogRepo {
	return CatalogRepo{store: store}
}

func (r CatalogRepo) GetItem(ctx context.Context, itemID int64) (hunting.Item, error) {
	var (
		item hunting.Item
		ok   bool
	)
	r.store.read(ctx, func() { item, ok = r.store.items[itemID] })
	if !ok {
		return hunting.Item{}, ports.ErrNotFound
	}
	return item, nil
}

func (r CatalogRepo) GetLocation(ctx context.Context, locationID int64) (hunting.Location, error) {
	var (
		loc hunting.Location
		ok  bool
	)
	r.store.read(ctx, func() { loc, ok = r.store.locations[locationID] })
	if !ok {
		return hunting.Location{}, ports.ErrNotFound
	}
	return loc, nil
}

func (r CatalogRepo) ListLocations(ctx context.Context) ([]hunting.Location, error) {
	var out []hunting.Location
	r.store.read(ctx, func() {
		for _, loc := range r.store.locations {
			out = append(out, loc)
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Difficulty != out[j].Difficulty {
			return out[i].Difficulty < out[j].Difficulty
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r CatalogRepo) ListMeows(ctx context.Context) ([]hunting.Meow, error) {
	var out []hunting.Meow
	r.store.read(ctx, func() {
		for _, m := range r.store.meows {
			out = append(out, m)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r CatalogRepo) ListSpawns(ctx context.Context, locationID int64) ([]hunting.Spawn, error) {
	var out []hunting.Spawn
	r.store.read(ctx, func() {
		for _, row := range r.store.spawns[locationID] {
			m, ok := r.store.meows[row.meowID]
			if !ok {
				continue
			}
			out = append(out, hunting.Spawn{Meow: m, SpawnChance: row.chance})
		}
	})
	return out, nil
}

func (r CatalogRepo) ListShopItems(ctx context.Context, locationID int64) ([]hunting.Item, error) {
	var out []hunting.Item
	r.store.read(ctx, func() {
		for _, id := range r.store.shop[locationID] {
			if item, ok := r.store.items[id]; ok {
				out = append(out, item)
			}
		}
	})
	return out, nil
}

func (r CatalogRepo) ListRanks(ctx context.Context) ([]hunting.Rank, error) {
	var out []hunting.Rank
	r.store.read(ctx, func() {
		for _, rank := range r.store.ranks {
			out = append(out, rank)
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].ExpRequired != out[j].ExpRequired {
			return out[i].ExpRequired < out[j].ExpRequired
		}
		return out[i].Ordinal < out[j].Ordinal
	})
	return out, nil
}
