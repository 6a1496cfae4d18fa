package httpadapter

import (
	"encoding/json"
	"testing"
	"time"

	"meowshunt/internal/app/collection"
	"meowshunt/internal/app/equipment"
	"meowshunt/internal/app/history"
	"meowshunt/internal/app/hunt"
	"meowshunt/internal/app/location"
	"meowshunt/internal/app/refill"
	"meowshunt/internal/app/shared/stateview"
	"meowshunt/internal/app/shop"
	"meowshunt/internal/app/status"
	"meowshunt/internal/domain/hunting"
)

func TestResponseJSONUsesSnakeCase(t *testing.T) {
	now := time.Unix(1760000000, 0).UTC()
	loc := hunting.Location{ID: 1, Name: "Backyard Garden", Difficulty: 0}
	trap := hunting.Item{ID: 1, Type: hunting.ItemTrap, Name: "Basic Trap", Power: 10, Price: 50}
	meowID := int64(1)
	locID := int64(1)

	cases := []struct {
		name    string
		payload any
		want    []string
		notWant []string
	}{
		{
			name:    "refill",
			payload: refill.Response{Success: true, NewEnergy: 3, Credited: 1},
			want:    []string{"success", "new_energy", "credited"},
			notWant: []string{"NewEnergy", "newEnergy"},
		},
		{
			name: "hunt",
			payload: hunt.Response{
				HuntID:      "h1",
				Outcome:     hunting.OutcomeCatch,
				Rewards:     hunt.Rewards{Gold: 10, Exp: 5},
				DisplayMeow: &hunt.DisplayMeow{ID: 1, Name: "Whiskers", ImageURL: "/meows/whiskers.png", Rarity: "common"},
				Energy:      4,
			},
			want:    []string{"hunt_id", "outcome", "rewards", "display_meow", "energy"},
			notWant: []string{"HuntID", "huntId", "DisplayMeow"},
		},
		{
			name: "status",
			payload: status.Response{
				Player:   status.PlayerView{ID: "p1", Gold: 100},
				Energy:   stateview.EnergyView{Current: 5, Max: 15, LastRefill: now},
				Location: &loc,
				Gear:     status.GearView{Trap: &trap, HuntReady: false, MissingSlot: hunting.SlotRug},
			},
			want:    []string{"player", "energy", "rank", "next_rank", "location", "gear"},
			notWant: []string{"Player", "NextRank"},
		},
		{
			name: "locations",
			payload: location.ListResponse{
				CurrentLocationID: &locID,
				Locations: []location.LocationView{{
					Location:  loc,
					Unlocked:  true,
					Meows:     []location.MeowView{{ID: 1, Name: "Whiskers", SpawnChance: 0.8}},
					ShopItems: []hunting.Item{trap},
				}},
			},
			want:    []string{"current_location_id", "locations"},
			notWant: []string{"CurrentLocationID", "currentLocationId"},
		},
		{
			name:    "equipment",
			payload: equipment.Response{Equipment: hunting.Equipment{PlayerID: "p1", TrapID: &meowID}},
			want:    []string{"equipment"},
			notWant: []string{"Equipment"},
		},
		{
			name:    "purchase",
			payload: shop.PurchaseResponse{NewGold: 50, Quantity: 1},
			want:    []string{"new_gold", "quantity"},
			notWant: []string{"NewGold", "newGold"},
		},
		{
			name: "history",
			payload: history.Response{
				Hunts:   []history.Entry{{ID: "h1", CreatedAt: now, LocationID: 1, MeowID: &meowID, Outcome: hunting.OutcomeCatch}},
				Catches: 1,
			},
			want:    []string{"hunts", "catches", "misses"},
			notWant: []string{"Hunts", "Catches"},
		},
		{
			name:    "collection",
			payload: collection.Response{Entries: []collection.Entry{{MeowID: 1, Name: "Whiskers", Caught: true, CatchCount: 2}}, Discovered: 1, Total: 6},
			want:    []string{"entries", "discovered", "total"},
			notWant: []string{"Entries"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.payload)
			if err != nil {
				t.Fatalf("marshal failed: %v", err)
			}
			var got map[string]any
			if err := json.Unmarshal(b, &got); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			for _, key := range tc.want {
				if _, ok := got[key]; !ok {
					t.Fatalf("expected key %q in %s", key, string(b))
				}
			}
			for _, key := range tc.notWant {
				if _, ok := got[key]; ok {
					t.Fatalf("unexpected key %q in %s", key, string(b))
				}
			}
			switch tc.name {
			case "status":
				energy := asMap(got["energy"])
				if _, ok := energy["seconds_until_next"]; !ok {
					t.Fatalf("expected nested snake_case key energy.seconds_until_next in %s", string(b))
				}
				gear := asMap(got["gear"])
				if _, ok := gear["hunt_ready"]; !ok {
					t.Fatalf("expected nested snake_case key gear.hunt_ready in %s", string(b))
				}
			case "locations":
				locs, _ := got["locations"].([]any)
				first := asMap(locs[0])
				for _, key := range []string{"min_exp_required", "shop_items", "unlocked"} {
					if _, ok := first[key]; !ok {
						t.Fatalf("expected embedded location key %q in %s", key, string(b))
					}
				}
			case "history":
				entries, _ := got["hunts"].([]any)
				first := asMap(entries[0])
				if _, ok := first["created_at"]; !ok {
					t.Fatalf("expected history entry created_at in %s", string(b))
				}
				if _, ok := first["CreatedAtISO"]; ok {
					t.Fatalf("csv-only field leaked into json: %s", string(b))
				}
			}
		})
	}
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
