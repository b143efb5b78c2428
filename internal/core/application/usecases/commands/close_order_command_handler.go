package commands

import (
	"context"

	"autoservice/internal/core/domain/model/order"
)

// CloseOrderCommandHandler moves an Open order to Completed once every required
// task is completed. Completed orders are frozen.
type CloseOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCloseOrderCommandHandler creates a handler backed by uowFactory.
func NewCloseOrderCommandHandler(uowFactory OrderUoWFactory) CloseOrderCommandHandler {
	return CloseOrderCommandHandler{uowFactory: uowFactory}
}

// Handle completes the order once every required task is done.
func (h *CloseOrderCommandHandler) Handle(ctx context.Context, cmd CloseOrderCommand) (*order.ServiceOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.ServiceOrder) error {
		return o.Close()
	})
}
