package postgres

import (
	"context"
	"fmt"

	"giftexchange/internal/adapters/out/postgres/rosterrepo"
	"giftexchange/internal/core/domain/model/roster"
	"giftexchange/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.RosterRepository = (*RosterStore)(nil)

// RosterStore implements ports.RosterRepository with one unit of work per call.
type RosterStore struct {
	factory *GormUnitOfWorkFactory
}

func NewRosterStore(db *gorm.DB) *RosterStore {
	return &RosterStore{factory: NewGormUnitOfWorkFactory(db)}
}

// Migrate creates or updates the roster tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(rosterrepo.Models()...); err != nil {
		return fmt.Errorf("migrate roster tables: %w", err)
	}
	return nil
}

func (s *RosterStore) Save(ctx context.Context, r *roster.Roster) error {
	uow := s.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RosterRepository().Save(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (s *RosterStore) Get(ctx context.Context, name string) (*roster.Roster, error) {
	return s.factory.Create().RosterRepository().Get(ctx, name)
}

func (s *RosterStore) List(ctx context.Context) ([]string, error) {
	return s.factory.Create().RosterRepository().List(ctx)
}
