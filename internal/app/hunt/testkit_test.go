package hunt

import (
	"context"
	"sync"
	"testing"
	"time"

	"meowshunt/internal/adapter/repo/memory"
	"meowshunt/internal/app/ports"
	"meowshunt/internal/app/refill"
	"meowshunt/internal/domain/energy"
	"meowshunt/internal/domain/hunting"
)

var t0 = time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)

const (
	trapID     int64 = 1
	rugID      int64 = 2
	baitID     int64 = 3
	gardenID   int64 = 10
	barrenID   int64 = 11
	whiskersID int64 = 100
)

type fixedDice struct{ f float64 }

func (d fixedDice) Uint64() uint64   { return 0 }
func (d fixedDice) Float64() float64 { return d.f }

var (
	alwaysCatch = fixedDice{f: 0}
	alwaysMiss  = fixedDice{f: 0.999}
)

type recordingDispatcher struct {
	mu      sync.Mutex
	players []string
}

func (d *recordingDispatcher) Dispatch(playerID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.players = append(d.players, playerID)
}

type recordingMetrics struct {
	mu        sync.Mutex
	outcomes  map[hunting.Outcome]int
	rejected  map[string]int
	conflicts int
	failures  int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{outcomes: map[hunting.Outcome]int{}, rejected: map[string]int{}}
}

func (m *recordingMetrics) RecordOutcome(o hunting.Outcome, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[o]++
}

func (m *recordingMetrics) RecordRejected(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected[reason]++
}

func (m *recordingMetrics) RecordConflict()  { m.mu.Lock(); m.conflicts++; m.mu.Unlock() }
func (m *recordingMetrics) RecordFailure()   { m.mu.Lock(); m.failures++; m.mu.Unlock() }
func (m *recordingMetrics) RecordRefill(int) {}

type fixture struct {
	store    *memory.Store
	uc       UseCase
	ranks    *recordingDispatcher
	metrics  *recordingMetrics
	profiles memory.ProfileRepo
}

func ptr(v int64) *int64 { return &v }

func newFixture(t *testing.T, now time.Time, dice hunting.Dice) *fixture {
	t.Helper()
	store := memory.NewStore()
	store.SeedRank(hunting.Rank{ID: 1, Name: "Novice Hunter", ExpRequired: 0, Ordinal: 1})
	store.SeedItem(hunting.Item{ID: trapID, Type: hunting.ItemTrap, Name: "Wooden Box", Power: 20, Attraction: 5, Price: 50})
	store.SeedItem(hunting.Item{ID: rugID, Type: hunting.ItemRug, Name: "Cozy Blanket", Attraction: 5, Price: 30})
	store.SeedItem(hunting.Item{ID: baitID, Type: hunting.ItemBait, Name: "Tuna", Attraction: 10, Price: 5})
	store.SeedLocation(hunting.Location{ID: gardenID, Name: "Backyard Garden", Difficulty: 1})
	store.SeedLocation(hunting.Location{ID: barrenID, Name: "Empty Lot", Difficulty: 1})
	store.SeedMeow(hunting.Meow{
		ID: whiskersID, Name: "Whiskers", Rarity: "common", ImageURL: "/meows/whiskers.png",
		MinPower: 5, MaxPower: 30, RewardGold: 10, RewardExp: 5,
	}, gardenID, 0.6)

	store.SeedProfile(hunting.Profile{
		ID: "p1", Gold: 100, Energy: 5, LastEnergyRefill: now,
		CurrentLocationID: ptr(gardenID), RankID: ptr(1), Version: 1,
	})
	store.SeedEquipment(hunting.Equipment{PlayerID: "p1", TrapID: ptr(trapID), RugID: ptr(rugID), BaitID: ptr(baitID)})
	store.SeedInventory("p1", baitID, 3)

	nowFn := func() time.Time { return now }
	profiles := memory.NewProfileRepo(store)
	catalog := memory.NewCatalogRepo(store)
	f := &fixture{store: store, ranks: &recordingDispatcher{}, metrics: newRecordingMetrics(), profiles: profiles}
	f.uc = UseCase{
		TxManager: memory.NewTxManager(store),
		Refill: refill.UseCase{
			Profiles: profiles,
			Catalog:  catalog,
			Policy:   energy.DefaultPolicy(),
			Now:      nowFn,
		},
		Profiles:   profiles,
		Equipment:  memory.NewEquipmentRepo(store),
		Inventory:  memory.NewInventoryRepo(store),
		Catalog:    catalog,
		Hunts:      memory.NewHuntRepo(store),
		Collection: memory.NewCollectionRepo(store),
		Ranks:      f.ranks,
		Metrics:    f.metrics,
		Catch:      hunting.DefaultCatchPolicy(),
		Dice:       dice,
		NewID:      func() string { return "hunt-1" },
		Now:        nowFn,
	}
	return f
}

func (f *fixture) profile(t *testing.T) hunting.Profile {
	t.Helper()
	p, err := f.profiles.Get(context.Background(), "p1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	return p
}

func (f *fixture) bait(t *testing.T) int {
	t.Helper()
	qty, err := memory.NewInventoryRepo(f.store).Quantity(context.Background(), "p1", baitID)
	if err != nil {
		t.Fatalf("bait quantity: %v", err)
	}
	return qty
}

func (f *fixture) hunts(t *testing.T) []hunting.HuntRecord {
	t.Helper()
	list, err := memory.NewHuntRepo(f.store).ListByPlayer(context.Background(), "p1", ports.HuntQuery{})
	if err != nil {
		t.Fatalf("list hunts: %v", err)
	}
	return list
}

// failingHunts fails every append, after the rest of the hunt has been written.
type failingHunts struct {
	ports.HuntRepository
	err error
}

func (r failingHunts) Append(context.Context, hunting.HuntRecord) error {
	return r.err
}
