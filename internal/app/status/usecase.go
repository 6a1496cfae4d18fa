package status

import (
	"context"
	"errors"
	"fmt"

	"meowshunt/internal/app/auth"
	"meowshunt/internal/app/ports"
	"meowshunt/internal/app/refill"
	"meowshunt/internal/app/shared/stateview"
	"meowshunt/internal/domain/hunting"
)

type UseCase struct {
	TxManager ports.TxManager
	Refill    refill.UseCase
	Equipment ports.EquipmentRepository
	Inventory ports.InventoryRepository
	Catalog   ports.CatalogRepository
}

// Execute refills energy first so the numbers shown are current.
func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	playerID, err := auth.RequirePlayer(req.PlayerID)
	if err != nil {
		return Response{}, err
	}
	at := u.Refill.Clock()

	var out Response
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		profile, err := u.Refill.LoadOrCreate(txCtx, playerID, req.Username, at)
		if err != nil {
			return err
		}
		profile, _, err = u.Refill.RefillInTx(txCtx, profile, at)
		if err != nil {
			return err
		}
		out.Player = PlayerView{ID: profile.ID, Username: profile.Username, Gold: profile.Gold, Exp: profile.Exp}
		out.Energy = stateview.DeriveEnergyView(u.Refill.Policy, profile, at)

		if err := u.fillRank(txCtx, &out, profile); err != nil {
			return err
		}
		if profile.CurrentLocationID != nil {
			loc, err := u.Catalog.GetLocation(txCtx, *profile.CurrentLocationID)
			switch {
			case err == nil:
				out.Location = &loc
			case !errors.Is(err, ports.ErrNotFound):
				return fmt.Errorf("load location: %w", err)
			}
		}
		gear, err := u.loadGear(txCtx, playerID)
		if err != nil {
			return err
		}
		out.Gear = gear
		return nil
	})
	if err != nil {
		return Response{}, err
	}
	return out, nil
}

func (u UseCase) fillRank(ctx context.Context, out *Response, profile hunting.Profile) error {
	ranks, err := u.Catalog.ListRanks(ctx)
	if err != nil {
		return fmt.Errorf("list ranks: %w", err)
	}
	for i := range ranks {
		r := ranks[i]
		if profile.RankID != nil && r.ID == *profile.RankID {
			out.Rank = &r
		}
		if r.ExpRequired > profile.Exp && (out.NextRank == nil || r.ExpRequired < out.NextRank.ExpRequired) {
			out.NextRank = &r
		}
	}
	return nil
}

func (u UseCase) loadGear(ctx context.Context, playerID string) (GearView, error) {
	eq, err := u.Equipment.Get(ctx, playerID)
	if err != nil {
		return GearView{}, fmt.Errorf("load equipment: %w", err)
	}
	var gear GearView
	for _, slot := range hunting.Slots {
		id := eq.Get(slot)
		if id == nil {
			continue
		}
		item, err := u.Catalog.GetItem(ctx, *id)
		if errors.Is(err, ports.ErrNotFound) {
			continue
		}
		if err != nil {
			return GearView{}, fmt.Errorf("load %s: %w", slot, err)
		}
		switch slot {
		case hunting.SlotTrap:
			gear.Trap = &item
			gear.Power = item.Power
		case hunting.SlotRug:
			gear.Rug = &item
		case hunting.SlotBait:
			gear.Bait = &item
		}
		gear.Attraction += item.Attraction
	}
	if gear.Bait != nil {
		qty, err := u.Inventory.Quantity(ctx, playerID, gear.Bait.ID)
		if err != nil {
			return GearView{}, fmt.Errorf("bait quantity: %w", err)
		}
		gear.BaitQuantity = qty
	}
	switch {
	case gear.Trap == nil:
		gear.MissingSlot = hunting.SlotTrap
	case gear.Rug == nil:
		gear.MissingSlot = hunting.SlotRug
	case gear.Bait == nil:
		gear.MissingSlot = hunting.SlotBait
	}
	gear.HuntReady = gear.MissingSlot == "" && gear.BaitQuantity > 0
	return gear, nil
}
