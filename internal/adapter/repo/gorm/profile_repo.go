package gormrepo

import (
	"context"
	"errors"

	"meowshunt/internal/adapter/repo/gorm/model"
	"meowshunt/internal/app/ports"
	"meowshunt/internal/domain/hunting"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepo {
	return ProfileRepo{db: db}
}

func (r ProfileRepo) Get(ctx context.Context, playerID string) (hunting.Profile, error) {
	return r.get(conn(ctx, r.db), playerID)
}

// GetForUpdate takes a row lock that holds until the surrounding
// transaction ends.
func (r ProfileRepo) GetForUpdate(ctx context.Context, playerID string) (hunting.Profile, error) {
	db := conn(ctx, r.db).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	return r.get(db, playerID)
}

func (r ProfileRepo) get(db *gorm.DB, playerID string) (hunting.Profile, error) {
	var m model.Profile
	if err := db.Where("id = ?", playerID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return hunting.Profile{}, ports.ErrNotFound
		}
		return hunting.Profile{}, err
	}
	return toProfile(m), nil
}

func (r ProfileRepo) Create(ctx context.Context, profile hunting.Profile) error {
	m := fromProfile(profile)
	res := conn(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func (r ProfileRepo) SaveWithVersion(ctx context.Context, profile hunting.Profile, expectedVersion int64) error {
	updates := map[string]any{
		"username":            profile.Username,
		"gold":                int32(profile.Gold),
		"exp":                 int32(profile.Exp),
		"rank_id":             profile.RankID,
		"energy":              int32(profile.Energy),
		"last_energy_refill":  profile.LastEnergyRefill,
		"current_location_id": profile.CurrentLocationID,
		"version":             profile.Version,
		"updated_at":          profile.UpdatedAt,
	}
	res := conn(ctx, r.db).
		Model(&model.Profile{}).
		Where("id = ? AND version = ?", profile.ID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func toProfile(m model.Profile) hunting.Profile {
	return hunting.Profile{
		ID:                m.ID,
		Username:          m.Username,
		Gold:              int(m.Gold),
		Exp:               int(m.Exp),
		RankID:            m.RankID,
		Energy:            int(m.Energy),
		LastEnergyRefill:  m.LastEnergyRefill.UTC(),
		CurrentLocationID: m.CurrentLocationID,
		Version:           m.Version,
		CreatedAt:         m.CreatedAt.UTC(),
		UpdatedAt:         m.UpdatedAt.UTC(),
	}
}

func fromProfile(p hunting.Profile) model.Profile {
	return model.Profile{
		ID:                p.ID,
		Username:          p.Username,
		Gold:              int32(p.Gold),
		Exp:               int32(p.Exp),
		RankID:            p.RankID,
		Energy:            int32(p.Energy),
		LastEnergyRefill:  p.LastEnergyRefill,
		CurrentLocationID: p.CurrentLocationID,
		Version:           p.Version,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
