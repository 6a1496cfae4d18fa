package hunting

import (
	"testing"
	"time"
)

func TestEquipment_MissingSlotOrder(t *testing.T) {
	id := int64(1)
	cases := []struct {
		eq   Equipment
		want Slot
		miss bool
	}{
		{eq: Equipment{}, want: SlotTrap, miss: true},
		{eq: Equipment{TrapID: &id}, want: SlotRug, miss: true},
		{eq: Equipment{TrapID: &id, RugID: &id}, want: SlotBait, miss: true},
		{eq: Equipment{TrapID: &id, RugID: &id, BaitID: &id}, miss: false},
	}
	for _, tc := range cases {
		got, miss := tc.eq.MissingSlot()
		if miss != tc.miss || got != tc.want {
			t.Fatalf("MissingSlot(%+v) = %q,%v want %q,%v", tc.eq, got, miss, tc.want, tc.miss)
		}
	}
}

func TestEquipment_SetAndGet(t *testing.T) {
	var eq Equipment
	id := int64(5)
	eq.Set(SlotRug, &id)
	if got := eq.Get(SlotRug); got == nil || *got != 5 {
		t.Fatalf("rug slot = %v, want 5", got)
	}
	eq.Set(SlotRug, nil)
	if eq.Get(SlotRug) != nil {
		t.Fatalf("rug slot should be cleared")
	}
}

func TestParseSlot(t *testing.T) {
	if s, ok := ParseSlot("bait"); !ok || s != SlotBait {
		t.Fatalf("ParseSlot(bait) = %q,%v", s, ok)
	}
	if _, ok := ParseSlot("hat"); ok {
		t.Fatalf("expected hat to be rejected")
	}
}

func TestNewProfile_Defaults(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p := NewProfile("p1", 15, &Rank{ID: 3}, now)
	if p.Gold != StartingGold || p.Exp != 0 || p.Energy != 15 {
		t.Fatalf("unexpected defaults: %+v", p)
	}
	if p.RankID == nil || *p.RankID != 3 || !p.LastEnergyRefill.Equal(now) {
		t.Fatalf("unexpected rank/refill: %+v", p)
	}
}

func TestLoadout_Totals(t *testing.T) {
	l := Loadout{
		Trap: Item{Power: 12, Attraction: 3},
		Rug:  Item{Attraction: 4},
		Bait: Item{Attraction: 10},
	}
	if l.Power() != 12 || l.Attraction() != 17 {
		t.Fatalf("power=%d attraction=%d", l.Power(), l.Attraction())
	}
}
