package ports

import (
	"context"
	"time"

	"meowshunt/internal/domain/hunting"
)

type ProfileRepository interface {
	// GetForUpdate loads the profile and, inside a transaction, holds a row
	// lock until commit.
	GetForUpdate(ctx context.Context, playerID string) (hunting.Profile, error)
	Get(ctx context.Context, playerID string) (hunting.Profile, error)
	Create(ctx context.Context, profile hunting.Profile) error
	SaveWithVersion(ctx context.Context, profile hunting.Profile, expectedVersion int64) error
}

type EquipmentRepository interface {
	// Get returns an empty loadout for players who never equipped anything.
	Get(ctx context.Context, playerID string) (hunting.Equipment, error)
	Save(ctx context.Context, equipment hunting.Equipment) error
}

type InventoryRepository interface {
	Quantity(ctx context.Context, playerID string, itemID int64) (int, error)
	// Consume decrements only when enough is held, else ErrInsufficientQuantity.
	Consume(ctx context.Context, playerID string, itemID int64, n int) error
	Add(ctx context.Context, playerID string, itemID int64, n int) error
	List(ctx context.Context, playerID string) ([]hunting.InventoryEntry, error)
}

type CatalogRepository interface {
	GetItem(ctx context.Context, itemID int64) (hunting.Item, error)
	GetLocation(ctx context.Context, locationID int64) (hunting.Location, error)
	ListLocations(ctx context.Context) ([]hunting.Location, error)
	ListMeows(ctx context.Context) ([]hunting.Meow, error)
	ListSpawns(ctx context.Context, locationID int64) ([]hunting.Spawn, error)
	ListShopItems(ctx context.Context, locationID int64) ([]hunting.Item, error)
	ListRanks(ctx context.Context) ([]hunting.Rank, error)
}

// HuntQuery selects a player's hunts newest first. Zero From/To leave that
// side of the window open; Limit applies after the window, zero means all.
type HuntQuery struct {
	From  time.Time
	To    time.Time
	Limit int
}

type HuntRepository interface {
	Append(ctx context.Context, record hunting.HuntRecord) error
	ListByPlayer(ctx context.Context, playerID string, q HuntQuery) ([]hunting.HuntRecord, error)
}

type CollectionRepository interface {
	RecordCatch(ctx context.Context, playerID string, meowID int64, at time.Time) error
	ListByPlayer(ctx context.Context, playerID string) ([]hunting.CollectionEntry, error)
}
