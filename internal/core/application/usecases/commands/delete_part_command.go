package commands

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/guard"
)

var ErrDeletePartCommandIsNotConstructed = errors.New(
	"DeletePartCommand must be created via NewDeletePartCommand constructor",
)

// DeletePartCommand removes a part from the catalogue.
type DeletePartCommand struct {
	partID kernel.UUID
	guard  guard.ConstructorGuard
}

// NewDeletePartCommand validates the id and builds the command.
func NewDeletePartCommand(partID kernel.UUID) (DeletePartCommand, error) {
	if err := partID.Validate(); err != nil {
		return DeletePartCommand{}, err
	}
	return DeletePartCommand{partID: partID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through its constructor.
func (c DeletePartCommand) Validate() error {
	return c.guard.Validate(ErrDeletePartCommandIsNotConstructed)
}

// PartID returns the target part.
func (c DeletePartCommand) PartID() kernel.UUID {
	return c.partID
}
