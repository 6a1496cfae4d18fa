package gormrepo

import (
	"context"

	"meowshunt/internal/adapter/repo/gorm/model"
	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/hunting"

	"gorm.io/gorm"
)

type HuntRepo struct {
	db *gorm.DB
}

func NewHuntRepo(db *gorm.DB) HuntRepo {
	return HuntRepo{db: db}
}

func (r HuntRepo) Append(ctx context.Context, rec hunting.HuntRecord) error {
	m := model.Hunt{
		ID:         rec.ID,
		PlayerID:   rec.PlayerID,
		LocationID: rec.LocationID,
		MeowID:     rec.MeowID,
		Outcome:    string(rec.Outcome),
		BaitUsed:   rec.BaitUsed,
		RewardGold: int32(rec.RewardGold),
		RewardExp:  int32(rec.RewardExp),
		CreatedAt:  rec.CreatedAt,
	}
	return conn(ctx, r.db).Create(&m).Error
}

func (r HuntRepo) ListByPlayer(ctx context.Context, playerID string, hq ports.HuntQuery) ([]hunting.HuntRecord, error) {
	q := conn(ctx, r.db).
		Where("player_id = ?", playerID).
		Order("created_at DESC, id DESC")
	if !hq.From.IsZero() {
		q = q.Where("created_at >= ?", hq.From)
	}
	if !hq.To.IsZero() {
		q = q.Where("created_at <= ?", hq.To)
	}
	if hq.Limit > 0 {
		q = q.Limit(hq.Limit)
	}
	var rows []model.Hunt
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]hunting.HuntRecord, 0, len(rows))
	for _, m := range rows {
		out = append(out, hunting.HuntRecord{
			ID:         m.ID,
			PlayerID:   m.PlayerID,
			LocationID: m.LocationID,
			MeowID:     m.MeowID,
			Outcome:    hunting.Outcome(m.Outcome),
			BaitUsed:   m.BaitUsed,
			RewardGold: int(m.RewardGold),
			RewardExp:  int(m.RewardExp),
			CreatedAt:  m.CreatedAt.UTC(),
		})
	}
	return out, nil
}
