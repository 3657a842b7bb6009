// Package postgres provides the GORM-based Unit of Work that scopes the scheduling
// repositories to one database transaction.
//
// Aggregates written through the repositories are tracked by the unit of work. On Commit the
// domain events they raised are turned into outbox rows inside the same transaction, so a
// schedule transition and the notification about it are stored together or not at all.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, "schedule-events")
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.ScheduleRepository().Add(ctx, proposal); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories obtained while no transaction is active run directly on the connection.
// Each goroutine must use its own UnitOfWork.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"scheduling/internal/adapters/out/postgres/orderrepo"
	"scheduling/internal/adapters/out/postgres/outboxrepo"
	"scheduling/internal/adapters/out/postgres/schedulerepo"
	"scheduling/internal/core/domain/model/kernel"
	"scheduling/internal/core/domain/model/schedule"
	"scheduling/internal/core/ports"

	"gorm.io/gorm"
)

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventSource is implemented by aggregates that raise notifications.
type eventSource interface {
	DomainEvents() []schedule.Event
	ClearDomainEvents()
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db    *gorm.DB
	topic string
}

// NewGormUnitOfWorkFactory creates a factory. topic is the broker topic written on the outbox
// rows produced by Commit.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, cfg.KafkaTopic)
func NewGormUnitOfWorkFactory(db *gorm.DB, topic string) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, topic: topic}
}

// Create produces a new UnitOfWork with its own transaction state and tracked aggregates.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		topic:             f.topic,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the aggregates written in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	topic             string
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling Begin again while one is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit writes the pending domain events of the tracked aggregates to the outbox and
// commits. If the outbox write fails the transaction is rolled back and nothing is stored.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	sources, messages, err := uow.pendingMessages()
	if err != nil {
		_ = uow.Rollback(ctx)
		return err
	}

	if err = outboxrepo.NewGormOutboxRepository(uow.tx).Add(ctx, messages...); err != nil {
		_ = uow.Rollback(ctx)
		return fmt.Errorf("failed to write outbox: %w", err)
	}

	err = uow.tx.Commit().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	if err != nil {
		return err
	}

	for _, source := range sources {
		source.ClearDomainEvents()
	}
	return nil
}

// Rollback discards the transaction and forgets the tracked aggregates.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	uow.trackedAggregates = uow.trackedAggregates[:0]
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an OrderRepository bound to the active transaction, or to the
// connection when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// ScheduleRepository returns a ScheduleRepository bound to the active transaction, or to the
// connection when none is active.
func (uow *GormUnitOfWork) ScheduleRepository() ports.ScheduleRepository {
	return schedulerepo.NewGormScheduleRepository(uow.conn(), uow)
}

// OutboxRepository returns an OutboxRepository bound to the active transaction, or to the
// connection when none is active.
func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate written in this unit of work. Repositories call it
// after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// pendingMessages converts the events of every tracked event source into outbox messages.
// An aggregate tracked more than once contributes its events once.
func (uow *GormUnitOfWork) pendingMessages() ([]eventSource, []ports.OutboxMessage, error) {
	seen := make(map[kernel.UUID]struct{}, len(uow.trackedAggregates))
	sources := make([]eventSource, 0)
	messages := make([]ports.OutboxMessage, 0)

	for _, tracked := range uow.trackedAggregates {
		source, ok := tracked.Aggregate.(eventSource)
		if !ok {
			continue
		}
		if _, dup := seen[tracked.ID]; dup {
			continue
		}
		seen[tracked.ID] = struct{}{}
		sources = append(sources, source)

		for _, event := range source.DomainEvents() {
			payload, err := json.Marshal(event)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to encode %s event: %w", event.Type, err)
			}
			messages = append(messages, ports.OutboxMessage{
				ID:        event.ID,
				EventType: event.Type.String(),
				Topic:     uow.topic,
				Key:       event.OrderID.String(),
				Payload:   payload,
				Status:    ports.OutboxPending,
				CreatedAt: event.OccurredAt,
				UpdatedAt: event.OccurredAt,
			})
		}
	}

	return sources, messages, nil
}
