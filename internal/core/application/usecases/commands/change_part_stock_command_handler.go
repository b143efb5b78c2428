package commands

import (
	"context"

	"autoservice/internal/core/domain/model/part"
)

// ChangePartStockCommandHandler applies stock mutations under a per-part row lock,
// so concurrent callers never observe negative stock or a stale availability flag.
type ChangePartStockCommandHandler struct {
	uowFactory PartUoWFactory
}

// NewChangePartStockCommandHandler creates a handler backed by uowFactory.
func NewChangePartStockCommandHandler(uowFactory PartUoWFactory) ChangePartStockCommandHandler {
	return ChangePartStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the part as stored after the mutation.
func (h *ChangePartStockCommandHandler) Handle(ctx context.Context, cmd ChangePartStockCommand) (*part.Part, error) {
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

	partRepo := uow.PartRepository()
	p, err := partRepo.GetForUpdate(ctx, cmd.PartID())
	if err != nil {
		return nil, err
	}

	switch cmd.Operation() {
	case StockIncrease:
		err = p.Increase(cmd.Quantity())
	case StockDecrease:
		err = p.Decrease(cmd.Quantity())
	case StockSet:
		err = p.SetStock(cmd.Quantity())
	}
	if err != nil {
		return nil, err
	}

	if err = partRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
