package commands

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/guard"
)

var ErrUpdateLaborCostCommandIsNotConstructed = errors.New(
	"UpdateLaborCostCommand must be created via NewUpdateLaborCostCommand constructor",
)

// UpdateLaborCostCommand replaces the labor cost of an order. kernel.Money already
// rejects negative amounts.
type UpdateLaborCostCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	laborCost kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdateLaborCostCommand validates its arguments and builds the command.
func NewUpdateLaborCostCommand(orderID kernel.UUID, laborCost kernel.Money) (UpdateLaborCostCommand, error) {
	if err := errors.Join(orderID.Validate(), laborCost.Validate()); err != nil {
		return UpdateLaborCostCommand{}, err
	}

	return UpdateLaborCostCommand{
		orderID:   orderID,
		laborCost: laborCost,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through its constructor.
func (c UpdateLaborCostCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLaborCostCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c UpdateLaborCostCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LaborCost returns the new labor cost.
func (c UpdateLaborCostCommand) LaborCost() kernel.Money {
	return c.laborCost
}
