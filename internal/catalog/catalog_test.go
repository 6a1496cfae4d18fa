package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestDefault_IsValidAndPlayable(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	if len(c.Ranks) != 5 || len(c.Locations) != 2 || len(c.Items) != 9 || len(c.Meows) != 6 {
		t.Fatalf("unexpected sizes: ranks=%d locations=%d items=%d meows=%d", len(c.Ranks), len(c.Locations), len(c.Items), len(c.Meows))
	}
	if len(c.StarterKit) != 3 {
		t.Fatalf("expected 3 starter grants, got %d", len(c.StarterKit))
	}
	for _, m := range c.Meows {
		if len(m.Spawns) == 0 {
			t.Fatalf("meow %s has no spawn location", m.Name)
		}
	}
	if got := c.Items[0].Domain(); got.Type != "trap" || got.Power != 10 {
		t.Fatalf("unexpected first item: %+v", got)
	}
}

func TestParse_RejectsBrokenCatalogs(t *testing.T) {
	cases := map[string]string{
		"unknown field": `
ranks: [{id: 1, name: R, exp_required: 0}]
locations: [{id: 1, name: L}]
colour: blue
`,
		"no ranks": `
locations: [{id: 1, name: L}]
`,
		"bad item type": `
ranks: [{id: 1, name: R}]
locations: [{id: 1, name: L}]
items: [{id: 1, type: hat, name: H}]
`,
		"spawn at unknown location": `
ranks: [{id: 1, name: R}]
locations: [{id: 1, name: L}]
meows: [{id: 1, name: M, rarity: common, spawns: [{location: 9, chance: 0.5}]}]
`,
		"non-positive spawn chance": `
ranks: [{id: 1, name: R}]
locations: [{id: 1, name: L}]
meows: [{id: 1, name: M, rarity: common, spawns: [{location: 1, chance: 0}]}]
`,
		"max power below min": `
ranks: [{id: 1, name: R}]
locations: [{id: 1, name: L}]
meows: [{id: 1, name: M, rarity: common, min_power: 10, max_power: 5}]
`,
		"equip misc starter item": `
ranks: [{id: 1, name: R}]
locations: [{id: 1, name: L}]
items: [{id: 1, type: misc, name: Yarn}]
starter_kit: [{item: 1, quantity: 1, equip: true}]
`,
		"duplicate item": `
ranks: [{id: 1, name: R}]
locations: [{id: 1, name: L}]
items: [{id: 1, type: bait, name: A}, {id: 1, type: bait, name: B}]
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(doc))
			if err == nil {
				t.Fatal("expected parse error")
			}
			if name != "unknown field" && !errors.Is(err, ErrInvalidCatalog) {
				t.Fatalf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/catalog.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
