package queries

import (
	"errors"

	"autoservice/internal/pkg/guard"
)

var ErrGetInventoryValueQueryIsNotConstructed = errors.New(
	"GetInventoryValueQuery must be created via NewGetInventoryValueQuery constructor",
)

// GetInventoryValueQuery sums price times stock over the whole inventory.
type GetInventoryValueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetInventoryValueQuery builds the query.
func NewGetInventoryValueQuery() GetInventoryValueQuery {
	return GetInventoryValueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through its constructor.
func (q GetInventoryValueQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryValueQueryIsNotConstructed)
}
