package commands

import (
	"errors"
	"fmt"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"
	"autoservice/internal/pkg/guard"
)

var ErrChangePartStockCommandIsNotConstructed = errors.New(
	"ChangePartStockCommand must be created via NewChangePartStockCommand constructor",
)

// StockOperation selects how ChangePartStockCommand applies its quantity.
type StockOperation int

const (
	// StockIncrease adds quantity units.
	StockIncrease StockOperation = iota + 1
	// StockDecrease removes quantity units.
	StockDecrease
	// StockSet overwrites the counter with quantity.
	StockSet
)

// String returns the lower-case operation name.
func (o StockOperation) String() string {
	switch o {
	case StockIncrease:
		return "increase"
	case StockDecrease:
		return "decrease"
	case StockSet:
		return "set"
	default:
		return fmt.Sprintf("StockOperation(%d)", int(o))
	}
}

// ChangePartStockCommand increases, decreases or sets the stock of one part.
// Quantity rules belong to the Part aggregate so that they are applied under the row lock.
type ChangePartStockCommand struct { //nolint:recvcheck //using for validation
	partID    kernel.UUID
	operation StockOperation
	quantity  int

	guard guard.ConstructorGuard
}

// NewChangePartStockCommand validates its arguments and builds the command.
func NewChangePartStockCommand(partID kernel.UUID, operation StockOperation, quantity int) (ChangePartStockCommand, error) {
	cmd := ChangePartStockCommand{
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartID(partID),
		cmd.setOperation(operation),
	); err != nil {
		return ChangePartStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through its constructor.
func (c ChangePartStockCommand) Validate() error {
	return c.guard.Validate(ErrChangePartStockCommandIsNotConstructed)
}

// PartID returns the target part.
func (c ChangePartStockCommand) PartID() kernel.UUID {
	return c.partID
}

// Operation returns the stock change to apply.
func (c ChangePartStockCommand) Operation() StockOperation {
	return c.operation
}

// Quantity returns the number of units the operation uses.
func (c ChangePartStockCommand) Quantity() int {
	return c.quantity
}

func (c *ChangePartStockCommand) setPartID(partID kernel.UUID) error {
	if err := partID.Validate(); err != nil {
		return err
	}
	c.partID = partID
	return nil
}

func (c *ChangePartStockCommand) setOperation(operation StockOperation) error {
	if operation < StockIncrease || operation > StockSet {
		return errs.NewValueIsInvalidErrorWithCause(
			"operation is invalid",
			fmt.Errorf("%s is not a stock operation", operation),
		)
	}
	c.operation = operation
	return nil
}
