package commands

import (
	"context"

	"autoservice/internal/core/domain/model/part"
)

// CreatePartCommandHandler persists new parts.
type CreatePartCommandHandler struct {
	uowFactory PartUoWFactory
}

// NewCreatePartCommandHandler creates a handler backed by uowFactory.
func NewCreatePartCommandHandler(uowFactory PartUoWFactory) CreatePartCommandHandler {
	return CreatePartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the Part aggregate and stores it. The created part is returned.
func (h *CreatePartCommandHandler) Handle(ctx context.Context, cmd CreatePartCommand) (*part.Part, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	p, err := part.RestorePart(cmd.PartID(), cmd.Details(), cmd.Price(), cmd.Stock())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PartRepository().Add(ctx, p); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return p, nil
}
