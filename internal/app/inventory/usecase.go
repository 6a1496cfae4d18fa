package inventory

import (
	"context"
	"fmt"

	"meowshunt/internal/app/auth"
	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/hunting"
)

type Request struct {
	PlayerID string
	// Type narrows the listing to one item type; empty lists everything.
	Type string
}

type Entry struct {
	Item     hunting.Item  `json:"item"`
	Quantity int           `json:"quantity"`
	Equipped bool          `json:"equipped"`
	Slot     *hunting.Slot `json:"slot,omitempty"`
}

type Response struct {
	Items []Entry `json:"items"`
}

// UseCase lists what the player owns, flagging items currently equipped so a
// client can offer gear swaps without a second request.
type UseCase struct {
	Inventory ports.InventoryRepository
	Equipment ports.EquipmentRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	playerID, err := auth.RequirePlayer(req.PlayerID)
	if err != nil {
		return Response{}, err
	}
	filter := hunting.ItemType(req.Type)
	if req.Type != "" && !filter.Valid() {
		return Response{}, ErrInvalidRequest
	}

	owned, err := u.Inventory.List(ctx, playerID)
	if err != nil {
		return Response{}, fmt.Errorf("list inventory: %w", err)
	}
	loadout, err := u.Equipment.Get(ctx, playerID)
	if err != nil {
		return Response{}, fmt.Errorf("load equipment: %w", err)
	}
	equipped := make(map[int64]hunting.Slot, len(hunting.Slots))
	for _, slot := range hunting.Slots {
		if id := loadout.Get(slot); id != nil {
			equipped[*id] = slot
		}
	}

	out := Response{Items: make([]Entry, 0, len(owned))}
	for _, o := range owned {
		if filter != "" && o.Item.Type != filter {
			continue
		}
		e := Entry{Item: o.Item, Quantity: o.Quantity}
		if slot, ok := equipped[o.Item.ID]; ok {
			e.Equipped = true
			e.Slot = &slot
		}
		out.Items = append(out.Items, e)
	}
	return out, nil
}
