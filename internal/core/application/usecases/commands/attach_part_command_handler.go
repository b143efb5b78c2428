package commands

import (
	"context"

	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/core/domain/services"
)

// AttachPartCommandHandler attaches a part to an order and takes one unit from stock
// in the same transaction.
//
// Lock order is the order row first, then the part row. Preconditions are checked in
// this sequence: order exists, part exists, order is Open, part is in stock. Only then
// is membership tested, so a repeated attach of an in-stock part succeeds without
// consuming anything.
type AttachPartCommandHandler struct {
	uowFactory UoWFactory
	binder     services.PartBinder
}

// NewAttachPartCommandHandler creates a handler that locks orders and parts through uowFactory
// and moves stock with binder.
func NewAttachPartCommandHandler(uowFactory UoWFactory, binder services.PartBinder) AttachPartCommandHandler {
	return AttachPartCommandHandler{
		uowFactory: uowFactory,
		binder:     binder,
	}
}

// Handle locks the order and then the part, attaches the part and takes one
// unit out of stock. Both aggregates are committed together.
func (h *AttachPartCommandHandler) Handle(ctx context.Context, cmd AttachPartCommand) (*order.ServiceOrder, error) {
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

	added, err := h.binder.Attach(o, p)
	if err != nil {
		return nil, err
	}

	if added {
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
