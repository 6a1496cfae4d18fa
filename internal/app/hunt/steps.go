package hunt

import (
	"context"
	"errors"
	"fmt"

	"meowshunt/internal/app/auth"
	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/hunting"
)

func (u UseCase) ValidateRequest(req Request) (HuntContext, error) {
	playerID, err := auth.RequirePlayer(req.PlayerID)
	if err != nil {
		return HuntContext{State: StateRejected}, err
	}
	return HuntContext{
		State: StateIdle,
		In:    HuntInput{PlayerID: playerID, Username: req.Username, NowAt: u.now()},
	}, nil
}

func (u UseCase) LoadAndRefill(txCtx context.Context, hc *HuntContext) error {
	profile, err := u.Refill.LoadOrCreate(txCtx, hc.In.PlayerID, hc.In.Username, hc.In.NowAt)
	if err != nil {
		return err
	}
	profile, _, err = u.Refill.RefillInTx(txCtx, profile, hc.In.NowAt)
	if err != nil {
		return err
	}
	hc.View.Profile = profile
	hc.View.LoadedVersion = profile.Version
	return nil
}

func (u UseCase) CheckEnergy(hc *HuntContext) error {
	if hc.View.Profile.Energy <= 0 {
		return ErrInsufficientEnergy
	}
	hc.State = StateEnergyChecked
	return nil
}

func (u UseCase) CheckEquipment(txCtx context.Context, hc *HuntContext) error {
	eq, err := u.Equipment.Get(txCtx, hc.In.PlayerID)
	if err != nil {
		return fmt.Errorf("load equipment: %w", err)
	}
	if slot, missing := eq.MissingSlot(); missing {
		return &EquipmentIncompleteError{Slot: slot}
	}
	hc.View.Equipment = eq

	items := make(map[hunting.Slot]hunting.Item, len(hunting.Slots))
	for _, slot := range hunting.Slots {
		item, err := u.Catalog.GetItem(txCtx, *eq.Get(slot))
		if errors.Is(err, ports.ErrNotFound) || (err == nil && item.Type != slot.ItemType()) {
			return &EquipmentIncompleteError{Slot: slot}
		}
		if err != nil {
			return fmt.Errorf("load %s: %w", slot, err)
		}
		items[slot] = item
	}
	hc.View.Loadout = hunting.Loadout{
		Trap: items[hunting.SlotTrap],
		Rug:  items[hunting.SlotRug],
		Bait: items[hunting.SlotBait],
	}
	hc.State = StateEquipmentChecked
	return nil
}

func (u UseCase) CheckLocation(txCtx context.Context, hc *HuntContext) error {
	locID := hc.View.Profile.CurrentLocationID
	if locID == nil {
		return ErrNoLocationSelected
	}
	loc, err := u.Catalog.GetLocation(txCtx, *locID)
	if errors.Is(err, ports.ErrNotFound) {
		return ErrNoLocationSelected
	}
	if err != nil {
		return fmt.Errorf("load location: %w", err)
	}
	hc.View.Location = loc
	return nil
}

// ConsumeCosts takes one bait and one energy. A player leaving full energy
// starts the regeneration clock now.
func (u UseCase) ConsumeCosts(txCtx context.Context, hc *HuntContext) error {
	bait := hc.View.Loadout.Bait
	if err := u.Inventory.Consume(txCtx, hc.In.PlayerID, bait.ID, 1); err != nil {
		if errors.Is(err, ports.ErrInsufficientQuantity) {
			return ErrInsufficientBait
		}
		return fmt.Errorf("consume bait: %w", err)
	}

	p := &hc.View.Profile
	if p.Energy >= u.Refill.Policy.OrDefault().Max && hc.In.NowAt.After(p.LastEnergyRefill) {
		p.LastEnergyRefill = hc.In.NowAt
	}
	p.Energy--
	return nil
}

func (u UseCase) RollOutcome(txCtx context.Context, hc *HuntContext) error {
	table, err := u.Catalog.ListSpawns(txCtx, hc.View.Location.ID)
	if err != nil {
		return fmt.Errorf("load spawn table: %w", err)
	}
	dice := u.dice()
	spawn, ok := hunting.DrawSpawn(table, dice)
	hc.Tmp.Encountered = ok
	hc.Tmp.Outcome = hunting.OutcomeMiss
	if ok {
		hc.Tmp.Spawn = spawn
		policy := u.catchPolicy()
		hc.Tmp.Chance = policy.Chance(hc.View.Loadout, spawn.Meow, hc.View.Location)
		hc.Tmp.Outcome = policy.Roll(hc.Tmp.Chance, dice)
	}
	hc.State = StateOutcomeRolled
	return nil
}

func (u UseCase) ApplyRewards(txCtx context.Context, hc *HuntContext) error {
	p := &hc.View.Profile
	if hc.Tmp.Outcome == hunting.OutcomeCatch {
		meow := hc.Tmp.Spawn.Meow
		p.Gold += max(meow.RewardGold, 0)
		p.Exp += max(meow.RewardExp, 0)
		if err := u.Collection.RecordCatch(txCtx, hc.In.PlayerID, meow.ID, hc.In.NowAt); err != nil {
			return fmt.Errorf("record catch: %w", err)
		}
	}

	expected := hc.View.LoadedVersion
	p.Version = expected + 1
	p.UpdatedAt = hc.In.NowAt
	if err := u.Profiles.SaveWithVersion(txCtx, *p, expected); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	hc.State = StateRewardApplied
	return nil
}

func (u UseCase) RecordHunt(txCtx context.Context, hc *HuntContext) error {
	rec := hunting.HuntRecord{
		ID:         u.newID(),
		PlayerID:   hc.In.PlayerID,
		LocationID: hc.View.Location.ID,
		Outcome:    hc.Tmp.Outcome,
		BaitUsed:   hc.View.Loadout.Bait.ID,
		CreatedAt:  hc.In.NowAt,
	}
	// Only a catch references the creature; a miss records no meow even when
	// one was encountered.
	if hc.Tmp.Outcome == hunting.OutcomeCatch {
		meowID := hc.Tmp.Spawn.Meow.ID
		rec.MeowID = &meowID
		rec.RewardGold = max(hc.Tmp.Spawn.Meow.RewardGold, 0)
		rec.RewardExp = max(hc.Tmp.Spawn.Meow.RewardExp, 0)
	}
	if err := u.Hunts.Append(txCtx, rec); err != nil {
		return fmt.Errorf("append hunt: %w", err)
	}
	hc.Tmp.Record = rec
	hc.State = StateRecorded
	return nil
}
