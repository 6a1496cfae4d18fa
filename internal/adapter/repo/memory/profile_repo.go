package memory

import (
	"context"

	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/hunting"
)

type ProfileRepo struct {
	store *Store
}

func NewProfileRepo(store *Store) ProfileRepo {
	return ProfileRepo{store: store}
}

func (r ProfileRepo) Get(ctx context.Context, playerID string) (hunting.Profile, error) {
	var (
		p  hunting.Profile
		ok bool
	)
	r.store.read(ctx, func() {
		p, ok = r.store.players.profiles[playerID]
	})
	if !ok {
		return hunting.Profile{}, ports.ErrNotFound
	}
	return p, nil
}

// GetForUpdate relies on RunInTx holding the store lock.
func (r ProfileRepo) GetForUpdate(ctx context.Context, playerID string) (hunting.Profile, error) {
	return r.Get(ctx, playerID)
}

func (r ProfileRepo) Create(ctx context.Context, profile hunting.Profile) error {
	var err error
	r.store.write(ctx, func() {
		if _, exists := r.store.players.profiles[profile.ID]; exists {
			err = ports.ErrConflict
			return
		}
		r.store.players.profiles[profile.ID] = profile
	})
	return err
}

func (r ProfileRepo) SaveWithVersion(ctx context.Context, profile hunting.Profile, expectedVersion int64) error {
	var err error
	r.store.write(ctx, func() {
		current, ok := r.store.players.profiles[profile.ID]
		if !ok || current.Version != expectedVersion {
			err = ports.ErrConflict
			return
		}
		r.store.players.profiles[profile.ID] = profile
	})
	return err
}
