package queries

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrGetOrderTotalCostQueryIsNotConstructed = errors.New(
		"GetOrderTotalCostQuery must be created via NewGetOrderTotalCostQuery constructor",
	)
)

// GetOrderQuery reads one service order with its parts set and task checklists.
// The completion status line is derived from the same snapshot.
type GetOrderQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewGetOrderQuery validates the id and builds the query.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through its constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the target order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderTotalCostQuery prices an order at current part prices.
type GetOrderTotalCostQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewGetOrderTotalCostQuery validates the id and builds the query.
func NewGetOrderTotalCostQuery(orderID kernel.UUID) (GetOrderTotalCostQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderTotalCostQuery{}, err
	}
	return GetOrderTotalCostQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through its constructor.
func (q GetOrderTotalCostQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTotalCostQueryIsNotConstructed)
}

// OrderID returns the target order.
func (q GetOrderTotalCostQuery) OrderID() kernel.UUID {
	return q.orderID
}
