package commands

import (
	"context"

	"autoservice/internal/pkg/errs"
)

// DeletePartCommandHandler removes a part that no order holds in its parts set.
//
// The part row stays locked from the lookup until commit. An attach racing with
// the deletion waits on that lock and then finds the part gone, so an order can
// never end up pointing at a deleted part.
type DeletePartCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeletePartCommandHandler creates a handler backed by uowFactory.
func NewDeletePartCommandHandler(uowFactory UoWFactory) DeletePartCommandHandler {
	return DeletePartCommandHandler{uowFactory: uowFactory}
}

// Handle removes the part, or fails with an invalid state error naming an
// order that still holds it.
func (h *DeletePartCommandHandler) Handle(ctx context.Context, cmd DeletePartCommand) error {
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

	partRepo := uow.PartRepository()
	orderRepo := uow.OrderRepository()

	p, err := partRepo.GetForUpdate(ctx, cmd.PartID())
	if err != nil {
		return err
	}

	orderIDs, err := orderRepo.ReferencingOrders(ctx, p.ID())
	if err != nil {
		return err
	}
	if len(orderIDs) > 0 {
		return errs.NewInvalidStateError("part", "attached to order "+orderIDs[0].String(), "delete")
	}

	if err = partRepo.Delete(ctx, p.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
