package rosterrepo

import (
	"context"
	"errors"

	"giftexchange/internal/core/domain/model/kernel"
	"giftexchange/internal/core/domain/model/roster"
	"giftexchange/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormRosterRepository stores rosters with GORM. Save issues a delete and an
// insert; run it inside a transaction so a failed insert keeps the old roster.
type GormRosterRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormRosterRepository(db *gorm.DB, tracker aggregateTracker) *GormRosterRepository {
	return &GormRosterRepository{db: db, tracker: tracker}
}

// Save replaces whatever is stored under the roster's key.
func (r *GormRosterRepository) Save(ctx context.Context, aggregate *roster.Roster) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("roster_key = ?", aggregate.Key()).Delete(&RosterDTO{}).Error; err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := db.Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRosterRepository) Get(ctx context.Context, name string) (*roster.Roster, error) {
	key := roster.Key(name)
	if key == "" {
		return nil, roster.ErrNameIsRequired
	}

	var dto RosterDTO
	err := r.db.WithContext(ctx).
		Preload("Groups", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Preload("Groups.Members", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		First(&dto, "roster_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewObjectNotFoundError("roster", key)
	}
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormRosterRepository) List(ctx context.Context) ([]string, error) {
	keys := make([]string, 0)
	if err := r.db.WithContext(ctx).Model(&RosterDTO{}).Order("roster_key").Pluck("roster_key", &keys).Error; err != nil {
		return nil, err
	}
	return keys, nil
}
