package commands

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/guard"
)

var (
	ErrCloseOrderCommandIsNotConstructed = errors.New(
		"CloseOrderCommand must be created via NewCloseOrderCommand constructor",
	)
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// CloseOrderCommand completes an order whose required tasks are all done.
type CloseOrderCommand struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewCloseOrderCommand validates the id and builds the command.
func NewCloseOrderCommand(orderID kernel.UUID) (CloseOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CloseOrderCommand{}, err
	}
	return CloseOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through its constructor.
func (c CloseOrderCommand) Validate() error {
	return c.guard.Validate(ErrCloseOrderCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c CloseOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CancelOrderCommand cancels an open order and returns its parts to stock.
type CancelOrderCommand struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewCancelOrderCommand validates the id and builds the command.
func NewCancelOrderCommand(orderID kernel.UUID) (CancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through its constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DeleteOrderCommand removes an order. An Open order gives its parts back first.
type DeleteOrderCommand struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewDeleteOrderCommand validates the id and builds the command.
func NewDeleteOrderCommand(orderID kernel.UUID) (DeleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}
	return DeleteOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through its constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
