// Package postgres wires the roster repository to PostgreSQL through GORM.
//
// Writes go through a unit of work so that replacing a roster (delete the old
// rows, insert the new tree) is atomic:
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.RosterRepository().Save(ctx, r); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// RosterStore packages that sequence behind ports.RosterRepository.
package postgres

import (
	"context"

	"giftexchange/internal/adapters/out/postgres/rosterrepo"
	"giftexchange/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// TrackedAggregate is an aggregate written during a unit of work. Tracking is
// kept for tests and diagnostics only.
type TrackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory hands out one GormUnitOfWork per business operation.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() *GormUnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork owns at most one open transaction. Repositories obtained
// after Begin run inside it; before Begin they use the plain connection.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	tracked []TrackedAggregate
}

// Begin opens a transaction. Calling it twice keeps the first one.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx
	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is open,
// which makes it safe to defer after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked = nil
	return err
}

func (uow *GormUnitOfWork) RosterRepository() *rosterrepo.GormRosterRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return rosterrepo.NewGormRosterRepository(db, uow)
}

// TrackAggregate is called by repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.tracked = append(uow.tracked, TrackedAggregate{ID: id, Aggregate: aggregate})
}

// TrackedAggregates lists the aggregates written since the unit of work was
// created. No production path reads it; it exists for tests and diagnostics,
// for example to check what a transaction touched before it commits. Rollback
// clears it because the writes are gone.
func (uow *GormUnitOfWork) TrackedAggregates() []TrackedAggregate {
	return uow.tracked
}
