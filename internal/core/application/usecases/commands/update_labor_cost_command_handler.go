package commands

import (
	"context"

	"autoservice/internal/core/domain/model/order"
)

// UpdateLaborCostCommandHandler sets the labor cost of a single order.
type UpdateLaborCostCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateLaborCostCommandHandler creates a handler backed by uowFactory.
func NewUpdateLaborCostCommandHandler(uowFactory OrderUoWFactory) UpdateLaborCostCommandHandler {
	return UpdateLaborCostCommandHandler{uowFactory: uowFactory}
}

// Handle changes the labor cost of an Open order and returns the updated order.
func (h *UpdateLaborCostCommandHandler) Handle(ctx context.Context, cmd UpdateLaborCostCommand) (*order.ServiceOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.ServiceOrder) error {
		return o.UpdateLaborCost(cmd.LaborCost())
	})
}
