package commands

import (
	"context"

	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/services"
)

// DetachPartCommandHandler removes a part from an order and returns its unit to stock.
// Detaching a part that is not attached changes nothing.
type DetachPartCommandHandler struct {
	uowFactory UoWFactory
	binder     services.PartBinder
}

// NewDetachPartCommandHandler creates a handler that locks orders and parts through uowFactory
// and moves stock with binder.
func NewDetachPartCommandHandler(uowFactory UoWFactory, binder services.PartBinder) DetachPartCommandHandler {
	return DetachPartCommandHandler{
		uowFactory: uowFactory,
		binder:     binder,
	}
}

// Handle locks the order and then the part, detaches the part and returns
// its unit to stock. Detaching a part that is not attached changes nothing.
func (h *DetachPartCommandHandler) Handle(ctx context.Context, cmd DetachPartCommand) (*order.ServiceOrder, error) {
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

	p, err := partRepo.GetForUpdate(ctx, cmd.PartID())
	if err != nil {
		return nil, err
	}

	removed, err := h.binder.Detach(o, p)
	if err != nil {
		return nil, err
	}

	if removed {
		if err = partRepo.Update(ctx, p); err != nil {
			return nil, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
