package commands

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/guard"
)

var ErrChangePartPriceCommandIsNotConstructed = errors.New(
	"ChangePartPriceCommand must be created via NewChangePartPriceCommand constructor",
)

// ChangePartPriceCommand sets a new unit price. The positivity rule is checked by the aggregate.
type ChangePartPriceCommand struct { //nolint:recvcheck //using for validation
	partID kernel.UUID
	price  kernel.Money

	guard guard.ConstructorGuard
}

// NewChangePartPriceCommand validates its arguments and builds the command.
func NewChangePartPriceCommand(partID kernel.UUID, price kernel.Money) (ChangePartPriceCommand, error) {
	cmd := ChangePartPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartID(partID),
		cmd.setPrice(price),
	); err != nil {
		return ChangePartPriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through its constructor.
func (c ChangePartPriceCommand) Validate() error {
	return c.guard.Validate(ErrChangePartPriceCommandIsNotConstructed)
}

// PartID returns the target part.
func (c ChangePartPriceCommand) PartID() kernel.UUID {
	return c.partID
}

// Price returns the new unit price.
func (c ChangePartPriceCommand) Price() kernel.Money {
	return c.price
}

func (c *ChangePartPriceCommand) setPartID(partID kernel.UUID) error {
	if err := partID.Validate(); err != nil {
		return err
	}
	c.partID = partID
	return nil
}

func (c *ChangePartPriceCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}
