// Package catalog loads the game's reference data (ranks, locations, gear,
// meows and their spawn tables) from YAML.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"meowshunt/internal/domain/hunting"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

var ErrInvalidCatalog = errors.New("invalid catalog")

type Catalog struct {
	Ranks      []Rank       `yaml:"ranks" validate:"required,min=1,dive"`
	Locations  []Location   `yaml:"locations" validate:"required,min=1,dive"`
	Items      []Item       `yaml:"items" validate:"dive"`
	Meows      []Meow       `yaml:"meows" validate:"dive"`
	StarterKit []StarterRow `yaml:"starter_kit" validate:"dive"`
}

type Rank struct {
	ID          int64  `yaml:"id" validate:"required,gt=0"`
	Name        string `yaml:"name" validate:"required"`
	ExpRequired int    `yaml:"exp_required" validate:"gte=0"`
	Ordinal     int    `yaml:"ordinal"`
}

type Location struct {
	ID             int64  `yaml:"id" validate:"required,gt=0"`
	Name           string `yaml:"name" validate:"required"`
	Description    string `yaml:"description"`
	Difficulty     int    `yaml:"difficulty" validate:"gte=0"`
	MinExpRequired int    `yaml:"min_exp_required" validate:"gte=0"`
}

type Item struct {
	ID          int64   `yaml:"id" validate:"required,gt=0"`
	Type        string  `yaml:"type" validate:"required,oneof=trap rug bait cosmetic misc"`
	Name        string  `yaml:"name" validate:"required"`
	Description string  `yaml:"description"`
	Power       int     `yaml:"power" validate:"gte=0"`
	Attraction  int     `yaml:"attraction" validate:"gte=0"`
	Rarity      string  `yaml:"rarity"`
	Price       int     `yaml:"price" validate:"gte=0"`
	ImageURL    string  `yaml:"image_url"`
	Shops       []int64 `yaml:"shops"`
}

type Meow struct {
	ID          int64   `yaml:"id" validate:"required,gt=0"`
	Name        string  `yaml:"name" validate:"required"`
	Description string  `yaml:"description"`
	ImageURL    string  `yaml:"image_url"`
	Rarity      string  `yaml:"rarity" validate:"required"`
	MinPower    int     `yaml:"min_power" validate:"gte=0"`
	MaxPower    int     `yaml:"max_power" validate:"gtefield=MinPower"`
	RewardGold  int     `yaml:"reward_gold" validate:"gte=0"`
	RewardExp   int     `yaml:"reward_exp" validate:"gte=0"`
	Spawns      []Spawn `yaml:"spawns" validate:"dive"`
}

type Spawn struct {
	LocationID int64   `yaml:"location" validate:"required"`
	Chance     float64 `yaml:"chance" validate:"gt=0"`
}

type StarterRow struct {
	ItemID   int64 `yaml:"item" validate:"required"`
	Quantity int   `yaml:"quantity" validate:"gte=0"`
	Equip    bool  `yaml:"equip"`
}

// Default returns the catalog bundled with the binary.
func Default() (Catalog, error) {
	return Parse(bytes.NewReader(defaultCatalog))
}

// Load reads path, or the bundled catalog when path is empty.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) (Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Validate checks field constraints and that every reference points at an
// entry of this catalog.
func (c Catalog) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	locs := make(map[int64]bool, len(c.Locations))
	for _, l := range c.Locations {
		if locs[l.ID] {
			return fmt.Errorf("%w: duplicate location %d", ErrInvalidCatalog, l.ID)
		}
		locs[l.ID] = true
	}
	items := make(map[int64]Item, len(c.Items))
	for _, it := range c.Items {
		if _, dup := items[it.ID]; dup {
			return fmt.Errorf("%w: duplicate item %d", ErrInvalidCatalog, it.ID)
		}
		items[it.ID] = it
		for _, loc := range it.Shops {
			if !locs[loc] {
				return fmt.Errorf("%w: item %d sold at unknown location %d", ErrInvalidCatalog, it.ID, loc)
			}
		}
	}
	meows := make(map[int64]bool, len(c.Meows))
	for _, m := range c.Meows {
		if meows[m.ID] {
			return fmt.Errorf("%w: duplicate meow %d", ErrInvalidCatalog, m.ID)
		}
		meows[m.ID] = true
		for _, s := range m.Spawns {
			if !locs[s.LocationID] {
				return fmt.Errorf("%w: meow %d spawns at unknown location %d", ErrInvalidCatalog, m.ID, s.LocationID)
			}
		}
	}
	for _, row := range c.StarterKit {
		it, ok := items[row.ItemID]
		if !ok {
			return fmt.Errorf("%w: starter kit references unknown item %d", ErrInvalidCatalog, row.ItemID)
		}
		if _, slot := hunting.ParseSlot(it.Type); row.Equip && !slot {
			return fmt.Errorf("%w: starter item %d cannot be equipped", ErrInvalidCatalog, row.ItemID)
		}
	}
	return nil
}

func (r Rank) Domain() hunting.Rank {
	return hunting.Rank{ID: r.ID, Name: r.Name, ExpRequired: r.ExpRequired, Ordinal: r.Ordinal}
}

func (l Location) Domain() hunting.Location {
	return hunting.Location{
		ID:             l.ID,
		Name:           l.Name,
		Description:    l.Description,
		Difficulty:     l.Difficulty,
		MinExpRequired: l.MinExpRequired,
	}
}

func (i Item) Domain() hunting.Item {
	return hunting.Item{
		ID:          i.ID,
		Type:        hunting.ItemType(i.Type),
		Name:        i.Name,
		Description: i.Description,
		Power:       i.Power,
		Attraction:  i.Attraction,
		Rarity:      i.Rarity,
		Price:       i.Price,
		ImageURL:    i.ImageURL,
	}
}

func (m Meow) Domain() hunting.Meow {
	return hunting.Meow{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Rarity:      m.Rarity,
		MinPower:    m.MinPower,
		MaxPower:    m.MaxPower,
		RewardGold:  m.RewardGold,
		RewardExp:   m.RewardExp,
	}
}
