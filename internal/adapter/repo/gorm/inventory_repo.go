package gormrepo

import (
	"context"

	"meowshunt/internal/adapter/repo/gorm/model"
	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/hunting"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepo {
	return InventoryRepo{db: db}
}

func (r InventoryRepo) Quantity(ctx context.Context, playerID string, itemID int64) (int, error) {
	var rows []model.Inventory
	err := conn(ctx, r.db).
		Where("player_id = ? AND item_id = ?", playerID, itemID).
		Limit(1).
		Find(&rows).Error
	if err != nil || len(rows) == 0 {
		return 0, err
	}
	return int(rows[0].Quantity), nil
}

// Consume is a single conditional update so concurrent hunts can never
// drive a quantity below zero.
func (r InventoryRepo) Consume(ctx context.Context, playerID string, itemID int64, n int) error {
	if n <= 0 {
		return nil
	}
	res := conn(ctx, r.db).
		Model(&model.Inventory{}).
		Where("player_id = ? AND item_id = ? AND quantity >= ?", playerID, itemID, n).
		Update("quantity", gorm.Expr("quantity - ?", n))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrInsufficientQuantity
	}
	return nil
}

func (r InventoryRepo) Add(ctx context.Context, playerID string, itemID int64, n int) error {
	m := model.Inventory{PlayerID: playerID, ItemID: itemID, Quantity: int32(n)}
	return conn(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "player_id"}, {Name: "item_id"}},
			DoUpdates: clause.Assignments(map[string]any{"quantity": gorm.Expr("inventory.quantity + EXCLUDED.quantity")}),
		}).
		Create(&m).Error
}

func (r InventoryRepo) List(ctx context.Context, playerID string) ([]hunting.InventoryEntry, error) {
	type row struct {
		model.Item
		Quantity int32
	}
	var rows []row
	err := conn(ctx, r.db).
		Table(model.TableNameInventory+" AS inv").
		Select("items.*, inv.quantity").
		Joins("JOIN items ON items.id = inv.item_id").
		Where("inv.player_id = ? AND inv.quantity > 0", playerID).
		Order("items.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]hunting.InventoryEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, hunting.InventoryEntry{Item: toItem(r.Item), Quantity: int(r.Quantity)})
	}
	return out, nil
}
