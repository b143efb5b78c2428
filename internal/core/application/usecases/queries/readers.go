package queries

import (
	"context"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/model/part"
)

// PartReader is the read side of ports.PartRepository. Queries never lock rows.
type PartReader interface {
	Get(ctx context.Context, id kernel.UUID) (*part.Part, error)
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*part.Part, error)
}

// OrderReader is the read side of ports.OrderRepository.
type OrderReader interface {
	Get(ctx context.Context, id kernel.UUID) (*order.ServiceOrder, error)
}
