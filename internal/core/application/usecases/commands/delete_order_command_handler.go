package commands

import (
	"context"

	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/services"
)

// DeleteOrderCommandHandler removes an order in any state. When the order is
// still Open its parts are released exactly as cancellation does, and the
// restored stock is committed together with the deletion.
type DeleteOrderCommandHandler struct {
	uowFactory UoWFactory
	binder     services.PartBinder
}

// NewDeleteOrderCommandHandler creates a handler that locks orders and parts through uowFactory
// and moves stock with binder.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory, binder services.PartBinder) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		binder:     binder,
	}
}

// Handle removes the order. A missing order yields a not found error.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	partRepo := uow.PartRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if o.Status() == order.Open {
		parts, err := partRepo.GetManyForUpdate(ctx, o.Parts())
		if err != nil {
			return err
		}

		if err = h.binder.Cancel(o, parts); err != nil {
			return err
		}

		for _, p := range parts {
			if err = partRepo.Update(ctx, p); err != nil {
				return err
			}
		}
	}

	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
