package commands

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/part"
	"autoservice/internal/pkg/guard"
)

var ErrCreatePartCommandIsNotConstructed = errors.New(
	"CreatePartCommand must be created via NewCreatePartCommand constructor",
)

// CreatePartCommand registers a new spare part in the inventory.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("24.90")
//	cmd, err := NewCreatePartCommand(kernel.NewUUID(), part.Details{Name: "Air filter", Category: "Filters"}, price, 12)
//	if err != nil {
//	    return fmt.Errorf("invalid part data: %w", err)
//	}
//	p, err := handler.Handle(ctx, cmd)
type CreatePartCommand struct { //nolint:recvcheck //using for validation
	partID  kernel.UUID
	details part.Details
	price   kernel.Money
	stock   int

	guard guard.ConstructorGuard
}

// NewCreatePartCommand validates the identifier and the price. Name, category
// and stock rules are enforced by the Part aggregate itself.
func NewCreatePartCommand(partID kernel.UUID, details part.Details, price kernel.Money, stock int) (CreatePartCommand, error) {
	cmd := CreatePartCommand{
		details: details,
		stock:   stock,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartID(partID),
		cmd.setPrice(price),
	); err != nil {
		return CreatePartCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through its constructor.
func (c CreatePartCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartCommandIsNotConstructed)
}

// PartID returns the target part.
func (c CreatePartCommand) PartID() kernel.UUID {
	return c.partID
}

// Details returns the descriptive fields of the part.
func (c CreatePartCommand) Details() part.Details {
	return c.details
}

// Price returns the new unit price.
func (c CreatePartCommand) Price() kernel.Money {
	return c.price
}

// Stock returns the initial stock.
func (c CreatePartCommand) Stock() int {
	return c.stock
}

func (c *CreatePartCommand) setPartID(partID kernel.UUID) error {
	if err := partID.Validate(); err != nil {
		return err
	}
	c.partID = partID
	return nil
}

func (c *CreatePartCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}
