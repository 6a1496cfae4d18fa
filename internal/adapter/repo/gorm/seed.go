package gormrepo

import (
	"context"
	"fmt"

	"meowshunt/internal/adapter/repo/gorm/model"
	"meowshunt/internal/catalog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedCatalog upserts the reference data by id in one transaction. Rows that
// are not in the catalog are left alone.
func SeedCatalog(ctx context.Context, db *gorm.DB, c catalog.Catalog) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ranks := make([]model.Rank, 0, len(c.Ranks))
		for _, r := range c.Ranks {
			ranks = append(ranks, model.Rank{ID: r.ID, Name: r.Name, ExpRequired: int32(r.ExpRequired), Ordinal: int32(r.Ordinal)})
		}
		locations := make([]model.Location, 0, len(c.Locations))
		for _, l := range c.Locations {
			locations = append(locations, model.Location{
				ID:             l.ID,
				Name:           l.Name,
				Description:    l.Description,
				Difficulty:     int32(l.Difficulty),
				MinExpRequired: int32(l.MinExpRequired),
			})
		}
		var (
			items     = make([]model.Item, 0, len(c.Items))
			shopRows  []model.ItemLocation
			meows     = make([]model.Meow, 0, len(c.Meows))
			spawnRows []model.MeowLocation
		)
		for _, it := range c.Items {
			items = append(items, model.Item{
				ID:          it.ID,
				Type:        it.Type,
				Name:        it.Name,
				Description: it.Description,
				Power:       int32(it.Power),
				Attraction:  int32(it.Attraction),
				Rarity:      it.Rarity,
				Price:       int32(it.Price),
				ImageURL:    it.ImageURL,
			})
			for _, loc := range it.Shops {
				shopRows = append(shopRows, model.ItemLocation{ItemID: it.ID, LocationID: loc})
			}
		}
		for _, m := range c.Meows {
			meows = append(meows, model.Meow{
				ID:          m.ID,
				Name:        m.Name,
				Description: m.Description,
				ImageURL:    m.ImageURL,
				Rarity:      m.Rarity,
				MinPower:    int32(m.MinPower),
				MaxPower:    int32(m.MaxPower),
				RewardGold:  int32(m.RewardGold),
				RewardExp:   int32(m.RewardExp),
			})
			for _, sp := range m.Spawns {
				spawnRows = append(spawnRows, model.MeowLocation{MeowID: m.ID, LocationID: sp.LocationID, SpawnChance: sp.Chance})
			}
		}

		steps := []struct {
			table string
			rows  any
			empty bool
		}{
			{model.TableNameRank, &ranks, len(ranks) == 0},
			{model.TableNameLocation, &locations, len(locations) == 0},
			{model.TableNameItem, &items, len(items) == 0},
			{model.TableNameMeow, &meows, len(meows) == 0},
			{model.TableNameItemLocation, &shopRows, len(shopRows) == 0},
			{model.TableNameMeowLocation, &spawnRows, len(spawnRows) == 0},
		}
		for _, s := range steps {
			if s.empty {
				continue
			}
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(s.rows).Error; err != nil {
				return fmt.Errorf("seed %s: %w", s.table, err)
			}
		}
		for _, table := range []string{model.TableNameRank, model.TableNameLocation, model.TableNameItem, model.TableNameMeow} {
			sql := fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 1))`, table)
			if err := tx.Exec(sql).Error; err != nil {
				return fmt.Errorf("reset %s sequence: %w", table, err)
			}
		}
		return nil
	})
}
