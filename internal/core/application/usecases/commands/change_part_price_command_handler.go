package commands

import (
	"context"

	"autoservice/internal/core/domain/model/part"
)

// ChangePartPriceCommandHandler replaces the unit price of a part.
type ChangePartPriceCommandHandler struct {
	uowFactory PartUoWFactory
}

// NewChangePartPriceCommandHandler creates a handler backed by uowFactory.
func NewChangePartPriceCommandHandler(uowFactory PartUoWFactory) ChangePartPriceCommandHandler {
	return ChangePartPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle locks the part, changes its price and returns the updated part.
// Orders holding the part pick up the new price in their total cost.
func (h *ChangePartPriceCommandHandler) Handle(ctx context.Context, cmd ChangePartPriceCommand) (*part.Part, error) {
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

	if err = p.ChangePrice(cmd.Price()); err != nil {
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
