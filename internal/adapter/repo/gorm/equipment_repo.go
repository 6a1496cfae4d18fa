package gormrepo

import (
	"context"
	"errors"
	"time"

	"meowshunt/internal/adapter/repo/gorm/model"
	"meowshunt/internal/domain/hunting"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EquipmentRepo struct {
	db *gorm.DB
}

func NewEquipmentRepo(db *gorm.DB) EquipmentRepo {
	return EquipmentRepo{db: db}
}

func (r EquipmentRepo) Get(ctx context.Context, playerID string) (hunting.Equipment, error) {
	var m model.Equipment
	err := conn(ctx, r.db).Where("player_id = ?", playerID).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return hunting.Equipment{PlayerID: playerID}, nil
	}
	if err != nil {
		return hunting.Equipment{}, err
	}
	return hunting.Equipment{PlayerID: m.PlayerID, TrapID: m.TrapID, RugID: m.RugID, BaitID: m.BaitID}, nil
}

func (r EquipmentRepo) Save(ctx context.Context, eq hunting.Equipment) error {
	m := model.Equipment{
		PlayerID:  eq.PlayerID,
		TrapID:    eq.TrapID,
		RugID:     eq.RugID,
		BaitID:    eq.BaitID,
		UpdatedAt: time.Now().UTC(),
	}
	return conn(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "player_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"trap_id", "rug_id", "bait_id", "updated_at"}),
		}).
		Create(&m).Error
}
