package memory

import (
	"context"
	"sort"

	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/hunting"
)

type InventoryRepo struct {
	store *Store
}

func NewInventoryRepo(store *Store) InventoryRepo {
	return InventoryRepo{store: store}
}

func (r InventoryRepo) Quantity(ctx context.Context, playerID string, itemID int64) (int, error) {
	var qty int
	r.store.read(ctx, func() {
		qty = r.store.players.inventory[playerID][itemID]
	})
	return qty, nil
}

func (r InventoryRepo) Consume(ctx context.Context, playerID string, itemID int64, n int) error {
	if n <= 0 {
		return nil
	}
	var err error
	r.store.write(ctx, func() {
		held := r.store.players.inventory[playerID][itemID]
		if held < n {
			err = ports.ErrInsufficientQuantity
			return
		}
		r.store.players.inventory[playerID][itemID] = held - n
	})
	return err
}

func (r InventoryRepo) Add(ctx context.Context, playerID string, itemID int64, n int) error {
	r.store.write(ctx, func() {
		if r.store.players.inventory[playerID] == nil {
			r.store.players.inventory[playerID] = make(map[int64]int)
		}
		r.store.players.inventory[playerID][itemID] += n
	})
	return nil
}

func (r InventoryRepo) List(ctx context.Context, playerID string) ([]hunting.InventoryEntry, error) {
	var out []hunting.InventoryEntry
	r.store.read(ctx, func() {
		for itemID, qty := range r.store.players.inventory[playerID] {
			if qty <= 0 {
				continue
			}
			item, ok := r.store.items[itemID]
			if !ok {
				item = hunting.Item{ID: itemID}
			}
			out = append(out, hunting.InventoryEntry{Item: item, Quantity: qty})
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Item.ID < out[j].Item.ID })
	return out, nil
}
