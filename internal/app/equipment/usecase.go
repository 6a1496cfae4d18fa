package equipment

import (
	"context"
	"errors"
	"fmt"

	"meowshunt/internal/app/auth"
	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/hunting"
)

var (
	ErrInvalidRequest   = errors.New("invalid equipment request")
	ErrItemSlotMismatch = errors.New("item does not fit slot")
	ErrItemNotOwned     = errors.New("item not owned")
)

type EquipRequest struct {
	PlayerID string
	Slot     string
	ItemID   int64
}

type UnequipRequest struct {
	PlayerID string
	Slot     string
}

type Response struct {
	Equipment hunting.Equipment `json:"equipment"`
}

type UseCase struct {
	TxManager ports.TxManager
	Equipment ports.EquipmentRepository
	Inventory ports.InventoryRepository
	Catalog   ports.CatalogRepository
}

func (u UseCase) Equip(ctx context.Context, req EquipRequest) (Response, error) {
	playerID, err := auth.RequirePlayer(req.PlayerID)
	if err != nil {
		return Response{}, err
	}
	slot, ok := hunting.ParseSlot(req.Slot)
	if !ok || req.ItemID <= 0 {
		return Response{}, ErrInvalidRequest
	}

	var out Response
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := u.Catalog.GetItem(txCtx, req.ItemID)
		if err != nil {
			return fmt.Errorf("load item: %w", err)
		}
		if item.Type != slot.ItemType() {
			return ErrItemSlotMismatch
		}
		qty, err := u.Inventory.Quantity(txCtx, playerID, item.ID)
		if err != nil {
			return fmt.Errorf("load inventory: %w", err)
		}
		if qty < 1 {
			return ErrItemNotOwned
		}

		eq, err := u.Equipment.Get(txCtx, playerID)
		if err != nil {
			return fmt.Errorf("load equipment: %w", err)
		}
		eq.PlayerID = playerID
		id := item.ID
		eq.Set(slot, &id)
		if err := u.Equipment.Save(txCtx, eq); err != nil {
			return fmt.Errorf("save equipment: %w", err)
		}
		out.Equipment = eq
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

func (u UseCase) Unequip(ctx context.Context, req UnequipRequest) (Response, error) {
	playerID, err := auth.RequirePlayer(req.PlayerID)
	if err != nil {
		return Response{}, err
	}
	slot, ok := hunting.ParseSlot(req.Slot)
	if !ok {
		return Response{}, ErrInvalidRequest
	}

	var out Response
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		eq, err := u.Equipment.Get(txCtx, playerID)
		if err != nil {
			return fmt.Errorf("load equipment: %w", err)
		}
		eq.PlayerID = playerID
		eq.Set(slot, nil)
		if err := u.Equipment.Save(txCtx, eq); err != nil {
			return fmt.Errorf("save equipment: %w", err)
		}
		out.Equipment = eq
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}
