package memory

import (
	"context"
	"sort"
	"time"

	"meowshunt/internal/domain/hunting"
)

type CollectionRepo struct {
	store *Store
}

func NewCollectionRepo(store *Store) CollectionRepo {
	return CollectionRepo{store: store}
}

func (r CollectionRepo) RecordCatch(ctx context.Context, playerID string, meowID int64, at time.Time) error {
	r.store.write(ctx, func() {
		byMeow := r.store.players.collection[playerID]
		if byMeow == nil {
			byMeow = make(map[int64]hunting.CollectionEntry)
			r.store.players.collection[playerID] = byMeow
		}
		entry, ok := byMeow[meowID]
		if !ok {
			entry = hunting.CollectionEntry{PlayerID: playerID, MeowID: meowID, FirstCaughtAt: at}
		}
		entry.CatchCount++
		entry.LastCaughtAt = at
		byMeow[meowID] = entry
	})
	return nil
}

func (r CollectionRepo) ListByPlayer(ctx context.Context, playerID string) ([]hunting.CollectionEntry, error) {
	var out []hunting.CollectionEntry
	r.store.read(ctx, func() {
		for _, e := range r.store.players.collection[playerID] {
			out = append(out, e)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].MeowID < out[j].MeowID })
	return out, nil
}
