package queries

import (
	"context"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/services"
)

// GetOrderQueryHandler loads one order snapshot without locking it.
type GetOrderQueryHandler struct {
	orders OrderReader
}

// NewGetOrderQueryHandler creates a handler reading through orders.
func NewGetOrderQueryHandler(orders OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns the order or a not found error.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.ServiceOrder, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.Get(ctx, query.OrderID())
}

// GetOrderTotalCostQueryHandler adds the labor cost and the current price of
// every attached part.
type GetOrderTotalCostQueryHandler struct {
	orders     OrderReader
	parts      PartReader
	calculator services.CostCalculator
}

// NewGetOrderTotalCostQueryHandler creates a handler over the given readers.
func NewGetOrderTotalCostQueryHandler(
	orders OrderReader,
	parts PartReader,
	calculator services.CostCalculator,
) GetOrderTotalCostQueryHandler {
	return GetOrderTotalCostQueryHandler{
		orders:     orders,
		parts:      parts,
		calculator: calculator,
	}
}

// Handle prices the order with the current price of each attached part.
func (h GetOrderTotalCostQueryHandler) Handle(ctx context.Context, query GetOrderTotalCostQuery) (kernel.Money, error) {
	if err := query.Validate(); err != nil {
		return kernel.Money{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return kernel.Money{}, err
	}

	parts, err := h.parts.GetMany(ctx, o.Parts())
	if err != nil {
		return kernel.Money{}, err
	}

	return h.calculator.TotalCost(o, parts)
}
