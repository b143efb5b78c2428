package commands

import (
	"context"

	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/services"
)

// CancelOrderCommandHandler cancels an Open order. Each attached part gets one
// unit back, and the parts, the order status and the emptied set are committed together.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	binder     services.PartBinder
}

// NewCancelOrderCommandHandler creates a handler that locks orders and parts
// through uowFactory.
func NewCancelOrderCommandHandler(uowFactory UoWFactory, binder services.PartBinder) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		binder:     binder,
	}
}

// Handle cancels the order and returns its final snapshot.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.ServiceOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	partRepo := uow.PartRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ValidateMutable("cancel"); err != nil {
		return nil, err
	}

	parts, err := partRepo.GetManyForUpdate(ctx, o.Parts())
	if err != nil {
		return nil, err
	}

	if err = h.binder.Cancel(o, parts); err != nil {
		return nil, err
	}

	for _, p := range parts {
		if err = partRepo.Update(ctx, p); err != nil {
			return nil, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
