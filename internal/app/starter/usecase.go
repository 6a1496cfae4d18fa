package starter

import (
	"context"
	"fmt"

	"meowshunt/internal/app/ports"
	"meowshunt/internal/catalog"
	"meowshunt/internal/domain/hunting"
)

// Grant is one line of the starter kit. Equip puts the item straight into
// the slot matching its type.
type Grant struct {
	ItemID   int64
	Quantity int
	Equip    bool
}

type Kit []Grant

func KitFromCatalog(c catalog.Catalog) Kit {
	kit := make(Kit, 0, len(c.StarterKit))
	for _, row := range c.StarterKit {
		kit = append(kit, Grant{ItemID: row.ItemID, Quantity: row.Quantity, Equip: row.Equip})
	}
	return kit
}

// UseCase hands a new player their starter kit. It implements
// refill.Onboarder so it runs in the transaction that creates the profile.
type UseCase struct {
	Inventory ports.InventoryRepository
	Equipment ports.EquipmentRepository
	Catalog   ports.CatalogRepository
	Kit       Kit
}

func (u UseCase) Onboard(txCtx context.Context, profile hunting.Profile) error {
	if len(u.Kit) == 0 {
		return nil
	}
	eq, err := u.Equipment.Get(txCtx, profile.ID)
	if err != nil {
		return fmt.Errorf("load equipment: %w", err)
	}
	equipped := false
	for _, g := range u.Kit {
		item, err := u.Catalog.GetItem(txCtx, g.ItemID)
		if err != nil {
			return fmt.Errorf("starter item %d: %w", g.ItemID, err)
		}
		if g.Quantity > 0 {
			if err := u.Inventory.Add(txCtx, profile.ID, item.ID, g.Quantity); err != nil {
				return fmt.Errorf("grant item %d: %w", item.ID, err)
			}
		}
		if !g.Equip {
			continue
		}
		slot, ok := hunting.ParseSlot(string(item.Type))
		if !ok {
			return fmt.Errorf("starter item %d: %s is not equippable", item.ID, item.Type)
		}
		id := item.ID
		eq.Set(slot, &id)
		equipped = true
	}
	if !equipped {
		return nil
	}
	eq.PlayerID = profile.ID
	if err := u.Equipment.Save(txCtx, eq); err != nil {
		return fmt.Errorf("save equipment: %w", err)
	}
	return nil
}
