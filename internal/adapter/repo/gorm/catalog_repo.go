package gormrepo

import (
	"context"
	"errors"

	"meowshunt/internal/adapter/repo/gorm/model"
	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/hunting"

	"gorm.io/gorm"
)

type CatalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepo(db *gorm.DB) CatalogRepo {
	return CatalogRepo{db: db}
}

func (r CatalogRepo) GetItem(ctx context.Context, itemID int64) (hunting.Item, error) {
	var m model.Item
	if err := conn(ctx, r.db).Where("id = ?", itemID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hunting.Item{}, ports.ErrNotFound
		}
		return hunting.Item{}, err
	}
	return toItem(m), nil
}

func (r CatalogRepo) GetLocation(ctx context.Context, locationID int64) (hunting.Location, error) {
	var m model.Location
	if err := conn(ctx, r.db).Where("id = ?", locationID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hunting.Location{}, ports.ErrNotFound
		}
		return hunting.Location{}, err
	}
	return toLocation(m), nil
}

func (r CatalogRepo) ListLocations(ctx context.Context) ([]hunting.Location, error) {
	var rows []model.Location
	if err := conn(ctx, r.db).Order("difficulty, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]hunting.Location, 0, len(rows))
	for _, m := range rows {
		out = append(out, toLocation(m))
	}
	return out, nil
}

func (r CatalogRepo) ListMeows(ctx context.Context) ([]hunting.Meow, error) {
	var rows []model.Meow
	if err := conn(ctx, r.db).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]hunting.Meow, 0, len(rows))
	for _, m := range rows {
		out = append(out, toMeow(m))
	}
	return out, nil
}

func (r CatalogRepo) ListSpawns(ctx context.Context, locationID int64) ([]hunting.Spawn, error) {
	type row struct {
		model.Meow
		SpawnChance float64
	}
	var rows []row
	err := conn(ctx, r.db).
		Table(model.TableNameMeowLocation+" AS ml").
		Select("meows.*, ml.spawn_chance").
		Joins("JOIN meows ON meows.id = ml.meow_id").
		Where("ml.location_id = ?", locationID).
		Order("meows.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]hunting.Spawn, 0, len(rows))
	for _, r := range rows {
		out = append(out, hunting.Spawn{Meow: toMeow(r.Meow), SpawnChance: r.SpawnChance})
	}
	return out, nil
}

func (r CatalogRepo) ListShopItems(ctx context.Context, locationID int64) ([]hunting.Item, error) {
	var rows []model.Item
	err := conn(ctx, r.db).
		Joins("JOIN item_locations il ON il.item_id = items.id").
		Where("il.location_id = ?", locationID).
		Order("items.price, items.id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]hunting.Item, 0, len(rows))
	for _, m := range rows {
		out = append(out, toItem(m))
	}
	return out, nil
}

func (r CatalogRepo) ListRanks(ctx context.Context) ([]hunting.Rank, error) {
	var rows []model.Rank
	if err := conn(ctx, r.db).Order("exp_required, ordinal").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]hunting.Rank, 0, len(rows))
	for _, m := range rows {
		out = append(out, hunting.Rank{ID: m.ID, Name: m.Name, ExpRequired: int(m.ExpRequired), Ordinal: int(m.Ordinal)})
	}
	return out, nil
}

func toItem(m model.Item) hunting.Item {
	return hunting.Item{
		ID:          m.ID,
		Type:        hunting.ItemType(m.Type),
		Name:        m.Name,
		Description: m.Description,
		Power:       int(m.Power),
		Attraction:  int(m.Attraction),
		Rarity:      m.Rarity,
		Price:       int(m.Price),
		ImageURL:    m.ImageURL,
	}
}

func toLocation(m model.Location) hunting.Location {
	return hunting.Location{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		Difficulty:     int(m.Difficulty),
		MinExpRequired: int(m.MinExpRequired),
	}
}

func toMeow(m model.Meow) hunting.Meow {
	return hunting.Meow{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Rarity:      m.Rarity,
		MinPower:    int(m.MinPower),
		MaxPower:    int(m.MaxPower),
		RewardGold:  int(m.RewardGold),
		RewardExp:   int(m.RewardExp),
	}
}
