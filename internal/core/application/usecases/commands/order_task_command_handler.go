package commands

import (
	"context"

	"autoservice/internal/core/domain/model/order"
)

// AddRequiredTaskCommandHandler adds a task to an Open order. Adding a task twice is a no-op.
type AddRequiredTaskCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddRequiredTaskCommandHandler creates a handler backed by uowFactory.
func NewAddRequiredTaskCommandHandler(uowFactory OrderUoWFactory) AddRequiredTaskCommandHandler {
	return AddRequiredTaskCommandHandler{uowFactory: uowFactory}
}

// Handle adds the task to an Open order's checklist. Adding a task that is
// already required changes nothing.
func (h *AddRequiredTaskCommandHandler) Handle(ctx context.Context, cmd AddRequiredTaskCommand) (*order.ServiceOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.ServiceOrder) error {
		return o.AddRequiredTask(cmd.Task())
	})
}

// CompleteTaskCommandHandler completes a required task of an Open order.
type CompleteTaskCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteTaskCommandHandler creates a handler backed by uowFactory.
func NewCompleteTaskCommandHandler(uowFactory OrderUoWFactory) CompleteTaskCommandHandler {
	return CompleteTaskCommandHandler{uowFactory: uowFactory}
}

// Handle marks a required task of an Open order as done and returns the order.
func (h *CompleteTaskCommandHandler) Handle(ctx context.Context, cmd CompleteTaskCommand) (*order.ServiceOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.ServiceOrder) error {
		return o.CompleteTask(cmd.Task())
	})
}
