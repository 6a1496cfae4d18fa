package gormrepo

import (
	"context"
	"time"

	"meowshunt/internal/adapter/repo/gorm/model"
	"meowshunt/internal/domain/hunting"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CollectionRepo struct {
	db *gorm.DB
}

func NewCollectionRepo(db *gorm.DB) CollectionRepo {
	return CollectionRepo{db: db}
}

func (r CollectionRepo) RecordCatch(ctx context.Context, playerID string, meowID int64, at time.Time) error {
	m := model.Collection{PlayerID: playerID, MeowID: meowID, CatchCount: 1, FirstCaughtAt: at, LastCaughtAt: at}
	return conn(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "player_id"}, {Name: "meow_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"catch_count":    gorm.Expr("collections.catch_count + 1"),
				"last_caught_at": gorm.Expr("EXCLUDED.last_caught_at"),
			}),
		}).
		Create(&m).Error
}

func (r CollectionRepo) ListByPlayer(ctx context.Context, playerID string) ([]hunting.CollectionEntry, error) {
	var rows []model.Collection
	if err := conn(ctx, r.db).Where("player_id = ?", playerID).Order("meow_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]hunting.CollectionEntry, 0, len(rows))
	for _, m := range rows {
		out = append(out, hunting.CollectionEntry{
			PlayerID:      m.PlayerID,
			MeowID:        m.MeowID,
			CatchCount:    int(m.CatchCount),
			FirstCaughtAt: m.FirstCaughtAt.UTC(),
			LastCaughtAt:  m.LastCaughtAt.UTC(),
		})
	}
	return out, nil
}
