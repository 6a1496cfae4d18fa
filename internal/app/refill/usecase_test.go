package refill

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"meowshunt/internal/adapter/repo/memory"
	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/energy"
	"meowshunt/internal/domain/hunting"
)

var t0 = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	store *memory.Store
	uc    UseCase
}

func newFixture(now time.Time) fixture {
	store := memory.NewStore()
	store.SeedRank(hunting.Rank{ID: 1, Name: "Novice Hunter", ExpRequired: 0, Ordinal: 1})
	store.SeedRank(hunting.Rank{ID: 2, Name: "Apprentice Hunter", ExpRequired: 100, Ordinal: 2})
	return fixture{
		store: store,
		uc: UseCase{
			TxManager: memory.NewTxManager(store),
			Profiles:  memory.NewProfileRepo(store),
			Catalog:   memory.NewCatalogRepo(store),
			Policy:    energy.DefaultPolicy(),
			Now:       func() time.Time { return now },
		},
	}
}

func (f fixture) profile(t *testing.T, id string) hunting.Profile {
	t.Helper()
	p, err := memory.NewProfileRepo(f.store).Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	return p
}

func TestUseCase_CreditsOneIntervalAndAdvancesClock(t *testing.T) {
	now := t0.Add(16 * time.Minute)
	f := newFixture(now)
	f.store.SeedProfile(hunting.Profile{ID: "p1", Energy: 10, LastEnergyRefill: t0, Version: 1})

	resp, err := f.uc.Execute(context.Background(), Request{PlayerID: "p1"})
	if err != nil {
		t.Fatalf("refill: %v", err)
	}
	if !resp.Success || resp.NewEnergy != 11 || resp.Credited != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	p := f.profile(t, "p1")
	if want := t0.Add(15 * time.Minute); !p.LastEnergyRefill.Equal(want) {
		t.Fatalf("last refill = %s, want %s", p.LastEnergyRefill, want)
	}
	if p.Version != 2 {
		t.Fatalf("version = %d, want 2", p.Version)
	}
}

func TestUseCase_SecondCallIsNoop(t *testing.T) {
	now := t0.Add(50 * time.Minute)
	f := newFixture(now)
	f.store.SeedProfile(hunting.Profile{ID: "p1", Energy: 2, LastEnergyRefill: t0, Version: 1})

	first, err := f.uc.Execute(context.Background(), Request{PlayerID: "p1"})
	if err != nil {
		t.Fatalf("first refill: %v", err)
	}
	before := f.profile(t, "p1")
	second, err := f.uc.Execute(context.Background(), Request{PlayerID: "p1"})
	if err != nil {
		t.Fatalf("second refill: %v", err)
	}
	after := f.profile(t, "p1")
	if first.NewEnergy != 5 || second.NewEnergy != 5 || second.Credited != 0 {
		t.Fatalf("first=%+v second=%+v", first, second)
	}
	if after.Version != before.Version || !after.LastEnergyRefill.Equal(before.LastEnergyRefill) {
		t.Fatalf("no-op refill wrote the profile: before=%+v after=%+v", before, after)
	}
}

func TestUseCase_FullPlayerIsUntouched(t *testing.T) {
	f := newFixture(t0.Add(5 * time.Hour))
	f.store.SeedProfile(hunting.Profile{ID: "p1", Energy: 15, LastEnergyRefill: t0, Version: 4})

	resp, err := f.uc.Execute(context.Background(), Request{PlayerID: "p1"})
	if err != nil {
		t.Fatalf("refill: %v", err)
	}
	p := f.profile(t, "p1")
	if resp.NewEnergy != 15 || p.Version != 4 || !p.LastEnergyRefill.Equal(t0) {
		t.Fatalf("resp=%+v profile=%+v", resp, p)
	}
}

func TestUseCase_ClampsCorruptedEnergy(t *testing.T) {
	f := newFixture(t0)
	f.store.SeedProfile(hunting.Profile{ID: "p1", Energy: 40, LastEnergyRefill: t0, Version: 1})

	resp, err := f.uc.Execute(context.Background(), Request{PlayerID: "p1"})
	if err != nil {
		t.Fatalf("refill: %v", err)
	}
	if resp.NewEnergy != 15 {
		t.Fatalf("energy = %d, want 15", resp.NewEnergy)
	}
}

func TestUseCase_CreatesProfileOnFirstAccess(t *testing.T) {
	f := newFixture(t0)
	resp, err := f.uc.Execute(context.Background(), Request{PlayerID: "new-player", Username: "tabby"})
	if err != nil {
		t.Fatalf("refill: %v", err)
	}
	p := f.profile(t, "new-player")
	if resp.NewEnergy != 15 || p.Gold != hunting.StartingGold || p.Username != "tabby" {
		t.Fatalf("resp=%+v profile=%+v", resp, p)
	}
	if p.RankID == nil || *p.RankID != 1 {
		t.Fatalf("expected lowest rank, got %v", p.RankID)
	}
}

func TestUseCase_RejectsAnonymousCaller(t *testing.T) {
	f := newFixture(t0)
	if _, err := f.uc.Execute(context.Background(), Request{PlayerID: " "}); !errors.Is(err, ports.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestUseCase_ConcurrentRefillsCreditOnce(t *testing.T) {
	now := t0.Add(31 * time.Minute)
	f := newFixture(now)
	f.store.SeedProfile(hunting.Profile{ID: "p1", Energy: 0, LastEnergyRefill: t0, Version: 1})

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := f.uc.Execute(context.Background(), Request{PlayerID: "p1"})
			if err != nil {
				t.Errorf("refill: %v", err)
				return
			}
			mu.Lock()
			total += resp.Credited
			mu.Unlock()
		}()
	}
	wg.Wait()
	if total != 2 {
		t.Fatalf("credited %d in total, want 2", total)
	}
	if p := f.profile(t, "p1"); p.Energy != 2 {
		t.Fatalf("energy = %d, want 2", p.Energy)
	}
}

type failingProfiles struct {
	ports.ProfileRepository
	err error
}

func (r failingProfiles) SaveWithVersion(context.Context, hunting.Profile, int64) error {
	return r.err
}

func TestUseCase_PropagatesPersistenceErrors(t *testing.T) {
	f := newFixture(t0.Add(time.Hour))
	f.store.SeedProfile(hunting.Profile{ID: "p1", Energy: 1, LastEnergyRefill: t0, Version: 1})
	boom := errors.New("connection refused")
	f.uc.Profiles = failingProfiles{ProfileRepository: memory.NewProfileRepo(f.store), err: boom}

	if _, err := f.uc.Execute(context.Background(), Request{PlayerID: "p1"}); !errors.Is(err, boom) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	f.uc.Profiles = failingProfiles{ProfileRepository: memory.NewProfileRepo(f.store), err: ports.ErrConflict}
	if _, err := f.uc.Execute(context.Background(), Request{PlayerID: "p1"}); !errors.Is(err, ports.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if p := f.profile(t, "p1"); p.Energy != 1 {
		t.Fatalf("energy changed despite failure: %d", p.Energy)
	}
}
