package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"meowshunt/internal/domain/hunting"
)

type spawnRow struct {
	meowID int64
	chance float64
}

type Store struct {
	mu sync.RWMutex

	ranks     map[int64]hunting.Rank
	items     map[int64]hunting.Item
	locations map[int64]hunting.Location
	meows     map[int64]hunting.Meow
	spawns    map[int64][]spawnRow
	shop      map[int64][]int64

	players playerTables
}

// playerTables holds everything a transaction may mutate. It is copied on
// transaction start and restored when the transaction fails.
type playerTables struct {
	profiles   map[string]hunting.Profile
	equipment  map[string]hunting.Equipment
	inventory  map[string]map[int64]int
	hunts      map[string][]hunting.HuntRecord
	collection map[string]map[int64]hunting.CollectionEntry
}

func NewStore() *Store {
	return &Store{
		ranks:     make(map[int64]hunting.Rank),
		items:     make(map[int64]hunting.Item),
		locations: make(map[int64]hunting.Location),
		meows:     make(map[int64]hunting.Meow),
		spawns:    make(map[int64][]spawnRow),
		shop:      make(map[int64][]int64),
		players: playerTables{
			profiles:   make(map[string]hunting.Profile),
			equipment:  make(map[string]hunting.Equipment),
			inventory:  make(map[string]map[int64]int),
			hunts:      make(map[string][]hunting.HuntRecord),
			collection: make(map[string]map[int64]hunting.CollectionEntry),
		},
	}
}

func (p playerTables) clone() playerTables {
	out := playerTables{
		profiles:   maps.Clone(p.profiles),
		equipment:  maps.Clone(p.equipment),
		inventory:  make(map[string]map[int64]int, len(p.inventory)),
		hunts:      make(map[string][]hunting.HuntRecord, len(p.hunts)),
		collection: make(map[string]map[int64]hunting.CollectionEntry, len(p.collection)),
	}
	for k, v := range p.inventory {
		out.inventory[k] = maps.Clone(v)
	}
	for k, v := range p.hunts {
		out.hunts[k] = slices.Clone(v)
	}
	for k, v := range p.collection {
		out.collection[k] = maps.Clone(v)
	}
	return out
}

type txKeyType struct{}

var txKey = txKeyType{}

func inTx(ctx context.Context) bool {
	v, _ := ctx.Value(txKey).(bool)
	return v
}

// read and write run fn under the store lock unless the caller already holds
// it through RunInTx.
func (s *Store) read(ctx context.Context, fn func()) {
	if !inTx(ctx) {
		s.mu.RLock()
		defer s.mu.RUnlock()
	}
	fn()
}

func (s *Store) write(ctx context.Context, fn func()) {
	if !inTx(ctx) {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	fn()
}

func (s *Store) SeedRank(r hunting.Rank) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ranks[r.ID] = r
}

func (s *Store) SeedItem(item hunting.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = item
}

func (s *Store) SeedLocation(loc hunting.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations[loc.ID] = loc
}

// SeedMeow registers a meow and, when chance is positive, its spawn weight at
// locationID.
func (s *Store) SeedMeow(m hunting.Meow, locationID int64, chance float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meows[m.ID] = m
	if chance > 0 {
		s.spawns[locationID] = append(s.spawns[locationID], spawnRow{meowID: m.ID, chance: chance})
	}
}

func (s *Store) SeedShopItem(locationID, itemID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shop[locationID] = append(s.shop[locationID], itemID)
}

func (s *Store) SeedProfile(p hunting.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players.profiles[p.ID] = p
}

func (s *Store) SeedEquipment(e hunting.Equipment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players.equipment[e.PlayerID] = e
}

func (s *Store) SeedInventory(playerID string, itemID int64, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.players.inventory[playerID] == nil {
		s.players.inventory[playerID] = make(map[int64]int)
	}
	s.players.inventory[playerID][itemID] = qty
}
