package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command. Units are never
// shared between requests.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a single command. Everything loaded
// with a GetForUpdate method stays locked until Commit or Rollback.
type UnitOfWork interface {
	// Begin opens the transaction.
	Begin(ctx context.Context) error

	// Commit makes the changes durable and then announces every aggregate
	// persisted through the unit. Fails when no transaction is open.
	Commit(ctx context.Context) error

	// Rollback discards the changes and the pending announcements.
	// Fails when no transaction is open.
	Rollback(ctx context.Context) error

	// PartRepository is bound to the open transaction, or to the connection pool
	// before Begin.
	PartRepository() PartRepository

	// OrderRepository is bound the same way as PartRepository.
	OrderRepository() OrderRepository
}
