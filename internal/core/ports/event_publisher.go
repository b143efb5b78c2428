package ports

import (
	"context"

	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/model/part"
)

// EventPublisher announces committed aggregate state to other systems.
// Implementations are called only after the owning transaction committed.
type EventPublisher interface {
	PublishOrderChanged(ctx context.Context, aggregate *order.ServiceOrder) error
	PublishPartChanged(ctx context.Context, aggregate *part.Part) error
	Close() error
}
