package hunting

import "time"

type ItemType string

const (
	ItemTrap     ItemType = "trap"
	ItemRug      ItemType = "rug"
	ItemBait     ItemType = "bait"
	ItemCosmetic ItemType = "cosmetic"
	ItemMisc     ItemType = "misc"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemTrap, ItemRug, ItemBait, ItemCosmetic, ItemMisc:
		return true
	}
	return false
}

type Slot string

const (
	SlotTrap Slot = "trap"
	SlotRug  Slot = "rug"
	SlotBait Slot = "bait"
)

// Slots lists equipment slots in the order they are checked before a hunt.
var Slots = []Slot{SlotTrap, SlotRug, SlotBait}

func ParseSlot(s string) (Slot, bool) {
	for _, slot := range Slots {
		if string(slot) == s {
			return slot, true
		}
	}
	return "", false
}

// ItemType is the gear type a slot accepts.
func (s Slot) ItemType() ItemType {
	return ItemType(s)
}

type Outcome string

const (
	OutcomeCatch Outcome = "catch"
	OutcomeMiss  Outcome = "miss"
)

type Profile struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	Gold              int       `json:"gold"`
	Exp               int       `json:"exp"`
	RankID            *int64    `json:"rank_id,omitempty"`
	Energy            int       `json:"energy"`
	LastEnergyRefill  time.Time `json:"last_energy_refill"`
	CurrentLocationID *int64    `json:"current_location_id,omitempty"`
	Version           int64     `json:"version"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

const (
	StartingGold = 100
	StartingExp  = 0
)

// NewProfile builds the record created on a player's first visit.
func NewProfile(id string, maxEnergy int, lowest *Rank, now time.Time) Profile {
	p := Profile{
		ID:               id,
		Gold:             StartingGold,
		Exp:              StartingExp,
		Energy:           maxEnergy,
		LastEnergyRefill: now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if lowest != nil {
		rid := lowest.ID
		p.RankID = &rid
	}
	return p
}

type Rank struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ExpRequired int    `json:"exp_required"`
	Ordinal     int    `json:"ordinal"`
}

type Item struct {
	ID          int64    `json:"id"`
	Type        ItemType `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Power       int      `json:"power"`
	Attraction  int      `json:"attraction"`
	Rarity      string   `json:"rarity,omitempty"`
	Price       int      `json:"price"`
	ImageURL    string   `json:"image_url,omitempty"`
}

type Equipment struct {
	PlayerID string `json:"player_id"`
	TrapID   *int64 `json:"trap_id,omitempty"`
	RugID    *int64 `json:"rug_id,omitempty"`
	BaitID   *int64 `json:"bait_id,omitempty"`
}

func (e Equipment) Get(slot Slot) *int64 {
	switch slot {
	case SlotTrap:
		return e.TrapID
	case SlotRug:
		return e.RugID
	case SlotBait:
		return e.BaitID
	}
	return nil
}

func (e *Equipment) Set(slot Slot, itemID *int64) {
	switch slot {
	case SlotTrap:
		e.TrapID = itemID
	case SlotRug:
		e.RugID = itemID
	case SlotBait:
		e.BaitID = itemID
	}
}

// MissingSlot reports the first empty slot, or false when the player is
// ready to hunt.
func (e Equipment) MissingSlot() (Slot, bool) {
	for _, slot := range Slots {
		if e.Get(slot) == nil {
			return slot, true
		}
	}
	return "", false
}

// Loadout is the resolved gear a hunt runs with.
type Loadout struct {
	Trap Item
	Rug  Item
	Bait Item
}

func (l Loadout) Power() int {
	return l.Trap.Power
}

func (l Loadout) Attraction() int {
	return l.Trap.Attraction + l.Rug.Attraction + l.Bait.Attraction
}

type Location struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Difficulty     int    `json:"difficulty"`
	MinExpRequired int    `json:"min_exp_required"`
}

func (l Location) UnlockedFor(exp int) bool {
	return exp >= l.MinExpRequired
}

type Meow struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Rarity      string `json:"rarity"`
	MinPower    int    `json:"min_power"`
	MaxPower    int    `json:"max_power"`
	RewardGold  int    `json:"reward_gold"`
	RewardExp   int    `json:"reward_exp"`
}

// Spawn is one entry of a location's spawn table.
type Spawn struct {
	Meow        Meow    `json:"meow"`
	SpawnChance float64 `json:"spawn_chance"`
}

type HuntRecord struct {
	ID         string    `json:"id"`
	PlayerID   string    `json:"player_id"`
	LocationID int64     `json:"location_id"`
	MeowID     *int64    `json:"meow_id,omitempty"`
	Outcome    Outcome   `json:"outcome"`
	BaitUsed   int64     `json:"bait_used"`
	RewardGold int       `json:"reward_gold"`
	RewardExp  int       `json:"reward_exp"`
	CreatedAt  time.Time `json:"created_at"`
}

type InventoryEntry struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

type CollectionEntry struct {
	PlayerID      string    `json:"player_id"`
	MeowID        int64     `json:"meow_id"`
	CatchCount    int       `json:"catch_count"`
	FirstCaughtAt time.Time `json:"first_caught_at"`
	LastCaughtAt  time.Time `json:"last_caught_at"`
}
