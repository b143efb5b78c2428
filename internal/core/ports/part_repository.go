// Package ports defines the contracts between the application core and its adapters:
// repositories for the Part and ServiceOrder aggregates, the unit of work that binds
// them to one transaction, and the publisher of change events.
package ports

import (
	"context"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/part"
)

// PartRepository defines the persistence contract for part aggregates.
type PartRepository interface {
	// Add persists a new part.
	Add(ctx context.Context, aggregate *part.Part) error

	// Update persists stock and price changes of an existing part.
	Update(ctx context.Context, aggregate *part.Part) error

	// Get retrieves a part without locking it.
	Get(ctx context.Context, id kernel.UUID) (*part.Part, error)

	// GetForUpdate retrieves a part and holds its row lock until the surrounding
	// transaction ends. Stock mutations must go through this method.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*part.Part, error)

	// GetManyForUpdate locks every listed part in ascending id order and returns them
	// in that order. Duplicate ids are collapsed. A missing id yields a not found error.
	GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*part.Part, error)

	// GetMany retrieves the listed parts without locking them.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*part.Part, error)

	// Delete removes a part. A missing id yields a not found error.
	Delete(ctx context.Context, id kernel.UUID) error
}
