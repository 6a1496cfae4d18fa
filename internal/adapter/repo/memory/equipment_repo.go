package memory

import (
	"context"

	"meowshunt/internal/domain/hunting"
)

type EquipmentRepo struct {
	store *Store
}

func NewEquipmentRepo(store *Store) EquipmentRepo {
	return EquipmentRepo{store: store}
}

func (r EquipmentRepo) Get(ctx context.Context, playerID string) (hunting.Equipment, error) {
	eq := hunting.Equipment{PlayerID: playerID}
	r.store.read(ctx, func() {
		if stored, ok := r.store.players.equipment[playerID]; ok {
			eq = stored
		}
	})
	return eq, nil
}

func (r EquipmentRepo) Save(ctx context.Context, equipment hunting.Equipment) error {
	r.store.write(ctx, func() {
		r.store.players.equipment[equipment.PlayerID] = equipment
	})
	return nil
}
