package memory

import (
	"context"

	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/hunting"
)

type HuntRepo struct {
	store *Store
}

func NewHuntRepo(store *Store) HuntRepo {
	return HuntRepo{store: store}
}

func (r HuntRepo) Append(ctx context.Context, record hunting.HuntRecord) error {
	r.store.write(ctx, func() {
		r.store.players.hunts[record.PlayerID] = append(r.store.players.hunts[record.PlayerID], record)
	})
	return nil
}

// ListByPlayer returns newest first.
func (r HuntRepo) ListByPlayer(ctx context.Context, playerID string, q ports.HuntQuery) ([]hunting.HuntRecord, error) {
	var out []hunting.HuntRecord
	r.store.read(ctx, func() {
		all := r.store.players.hunts[playerID]
		for i := len(all) - 1; i >= 0; i-- {
			if q.Limit > 0 && len(out) >= q.Limit {
				break
			}
			rec := all[i]
			if !q.From.IsZero() && rec.CreatedAt.Before(q.From) {
				continue
			}
			if !q.To.IsZero() && rec.CreatedAt.After(q.To) {
				continue
			}
			out = append(out, rec)
		}
	})
	return out, nil
}
