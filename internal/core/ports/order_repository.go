package ports

import (
	"context"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for service order aggregates,
// including their parts set and task checklists.
type OrderRepository interface {
	// Add persists a new order.
	Add(ctx context.Context, aggregate *order.ServiceOrder) error

	// Update persists all changes of an existing order, replacing its sets.
	Update(ctx context.Context, aggregate *order.ServiceOrder) error

	// Get retrieves an order without locking it.
	Get(ctx context.Context, id kernel.UUID) (*order.ServiceOrder, error)

	// GetForUpdate retrieves an order and holds its row lock until the surrounding
	// transaction ends. The order row is always locked before any part row.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.ServiceOrder, error)

	// Delete removes an order together with its parts set and task checklists.
	Delete(ctx context.Context, id kernel.UUID) error

	// ReferencingOrders lists the ids of orders whose parts set contains partID,
	// in ascending id order.
	ReferencingOrders(ctx context.Context, partID kernel.UUID) ([]kernel.UUID, error)
}
