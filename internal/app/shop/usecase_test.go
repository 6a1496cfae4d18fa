package shop

import (
	"context"
	"errors"
	"testing"
	"time"

	"meowshunt/internal/adapter/repo/memory"
	"meowshunt/internal/app/ports"
	"meowshunt/internal/app/refill"
	"meowshunt/internal/domain/energy"
	"meowshunt/internal/domain/hunting"
)

func ptr(v int64) *int64 { return &v }

type fixture struct {
	store *memory.Store
	uc    UseCase
}

func newFixture() fixture {
	store := memory.NewStore()
	store.SeedLocation(hunting.Location{ID: 1, Name: "Backyard Garden"})
	store.SeedLocation(hunting.Location{ID: 2, Name: "Mystic Forest"})
	store.SeedItem(hunting.Item{ID: 10, Type: hunting.ItemBait, Name: "Tuna", Price: 5})
	store.SeedItem(hunting.Item{ID: 11, Type: hunting.ItemTrap, Name: "Steel Cage", Price: 500})
	store.SeedShopItem(1, 10)
	store.SeedShopItem(1, 11)
	store.SeedProfile(hunting.Profile{ID: "p1", Gold: 100, CurrentLocationID: ptr(1), Version: 1})

	profiles := memory.NewProfileRepo(store)
	catalog := memory.NewCatalogRepo(store)
	return fixture{store: store, uc: UseCase{
		TxManager: memory.NewTxManager(store),
		Refill: refill.UseCase{
			Profiles: profiles,
			Catalog:  catalog,
			Policy:   energy.DefaultPolicy(),
			Now:      func() time.Time { return time.Unix(1760000000, 0) },
		},
		Profiles:  profiles,
		Inventory: memory.NewInventoryRepo(store),
		Catalog:   catalog,
	}}
}

func TestUseCase_PurchaseDebitsAndCredits(t *testing.T) {
	f := newFixture()
	f.store.SeedInventory("p1", 10, 2)

	resp, err := f.uc.Purchase(context.Background(), PurchaseRequest{PlayerID: "p1", ItemID: 10, Quantity: 4})
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if resp.NewGold != 80 || resp.Quantity != 6 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	p, _ := memory.NewProfileRepo(f.store).Get(context.Background(), "p1")
	if p.Gold != 80 {
		t.Fatalf("gold = %d, want 80", p.Gold)
	}
}

func TestUseCase_PurchaseRejections(t *testing.T) {
	cases := []struct {
		name  string
		req   PurchaseRequest
		setup func(f fixture)
		want  error
	}{
		{name: "anonymous", req: PurchaseRequest{ItemID: 10, Quantity: 1}, want: ports.ErrNotAuthenticated},
		{name: "zero quantity", req: PurchaseRequest{PlayerID: "p1", ItemID: 10}, want: ErrInvalidRequest},
		{name: "too many", req: PurchaseRequest{PlayerID: "p1", ItemID: 10, Quantity: 100}, want: ErrInvalidRequest},
		{name: "too expensive", req: PurchaseRequest{PlayerID: "p1", ItemID: 11, Quantity: 1}, want: ErrInsufficientGold},
		{name: "not stocked", req: PurchaseRequest{PlayerID: "p1", ItemID: 99, Quantity: 1}, want: ErrItemNotAvailable},
		{
			name: "wrong location",
			req:  PurchaseRequest{PlayerID: "p1", ItemID: 10, Quantity: 1},
			setup: func(f fixture) {
				f.store.SeedProfile(hunting.Profile{ID: "p1", Gold: 100, CurrentLocationID: ptr(2), Version: 1})
			},
			want: ErrItemNotAvailable,
		},
		{
			name: "no location",
			req:  PurchaseRequest{PlayerID: "p1", ItemID: 10, Quantity: 1},
			setup: func(f fixture) {
				f.store.SeedProfile(hunting.Profile{ID: "p1", Gold: 100, Version: 1})
			},
			want: ports.ErrNoLocationSelected,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			if tc.setup != nil {
				tc.setup(f)
			}
			if _, err := f.uc.Purchase(context.Background(), tc.req); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			p, _ := memory.NewProfileRepo(f.store).Get(context.Background(), "p1")
			if p.Gold != 100 {
				t.Fatalf("gold changed on rejection: %d", p.Gold)
			}
		})
	}
}

type failingInventory struct {
	ports.InventoryRepository
}

func (failingInventory) Add(context.Context, string, int64, int) error {
	return errors.New("inventory offline")
}

func TestUseCase_PurchaseIsAtomic(t *testing.T) {
	f := newFixture()
	f.uc.Inventory = failingInventory{InventoryRepository: memory.NewInventoryRepo(f.store)}

	if _, err := f.uc.Purchase(context.Background(), PurchaseRequest{PlayerID: "p1", ItemID: 10, Quantity: 2}); err == nil {
		t.Fatalf("expected failure")
	}
	p, _ := memory.NewProfileRepo(f.store).Get(context.Background(), "p1")
	if p.Gold != 100 || p.Version != 1 {
		t.Fatalf("gold debit survived failed purchase: %+v", p)
	}
}
