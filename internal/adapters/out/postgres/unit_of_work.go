// Package postgres provides the GORM based implementation of the Unit of Work pattern.
//
// A unit of work spans one database transaction. Repositories handed out by it run
// inside that transaction once Begin was called, and every aggregate they persist is
// tracked. After a successful Commit the tracked aggregates are announced through the
// configured ports.EventPublisher; a Rollback discards them.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
//	if err != nil {
//	    return err
//	}
//	// mutate o ...
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency: each UnitOfWork instance is confined to a single goroutine. Isolation
// between concurrent units comes from row locks taken by the GetForUpdate methods.
package postgres

import (
	"context"

	"autoservice/internal/adapters/out/postgres/orderrepo"
	"autoservice/internal/adapters/out/postgres/partrepo"
	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/model/part"
	"autoservice/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate persisted during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool
// and one event publisher.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewGormUnitOfWorkFactory creates a factory for GORM based units of work.
// A nil publisher disables event publishing and a nil logger discards logs.
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher, logger *zap.Logger) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GormUnitOfWorkFactory{db: db, publisher: publisher, logger: logger}
}

// Create produces a fresh unit of work with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the aggregates written in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.EventPublisher
	logger            *zap.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while a transaction is open is a no-op.
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

// Commit finalizes the transaction and then publishes change events for the
// tracked aggregates. Publishing failures are logged and do not undo the commit.
//
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return err
	}

	uow.publishTracked(ctx)
	return nil
}

// Rollback discards the transaction and the tracked aggregates.
//
// Returns gorm.ErrInvalidTransaction if no transaction is open, which makes a
// deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	uow.trackedAggregates = uow.trackedAggregates[:0]
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// PartRepository returns a part repository bound to the open transaction, or to
// the connection pool when no transaction is open.
func (uow *GormUnitOfWork) PartRepository() ports.PartRepository {
	return partrepo.NewGormPartRepository(uow.conn(), uow)
}

// OrderRepository returns an order repository bound to the open transaction, or to
// the connection pool when no transaction is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate persisted within this unit of work.
// Repositories call it after every successful write.
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

// publishTracked announces each tracked aggregate once, in first-write order,
// using its latest state.
func (uow *GormUnitOfWork) publishTracked(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)
	if uow.publisher == nil {
		return
	}

	latest := make(map[kernel.UUID]any, len(tracked))
	ordered := make([]kernel.UUID, 0, len(tracked))
	for _, t := range tracked {
		if _, seen := latest[t.ID]; !seen {
			ordered = append(ordered, t.ID)
		}
		latest[t.ID] = t.Aggregate
	}

	for _, id := range ordered {
		var err error
		switch aggregate := latest[id].(type) {
		case *order.ServiceOrder:
			err = uow.publisher.PublishOrderChanged(ctx, aggregate)
		case *part.Part:
			err = uow.publisher.PublishPartChanged(ctx, aggregate)
		default:
			continue
		}
		if err != nil {
			uow.logger.Warn("failed to publish change event",
				zap.String("aggregate_id", id.String()),
				zap.Error(err))
		}
	}
}
