package commands

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/guard"
)

var (
	ErrAttachPartCommandIsNotConstructed = errors.New(
		"AttachPartCommand must be created via NewAttachPartCommand constructor",
	)
	ErrDetachPartCommandIsNotConstructed = errors.New(
		"DetachPartCommand must be created via NewDetachPartCommand constructor",
	)
)

type orderPartIDs struct {
	orderID kernel.UUID
	partID  kernel.UUID
}

func newOrderPartIDs(orderID, partID kernel.UUID) (orderPartIDs, error) {
	if err := errors.Join(orderID.Validate(), partID.Validate()); err != nil {
		return orderPartIDs{}, err
	}
	return orderPartIDs{orderID: orderID, partID: partID}, nil
}

// OrderID returns the target order.
func (c orderPartIDs) OrderID() kernel.UUID {
	return c.orderID
}

// PartID returns the target part.
func (c orderPartIDs) PartID() kernel.UUID {
	return c.partID
}

// AttachPartCommand binds one unit of a part to a service order.
//
// Example:
//
//	cmd, err := NewAttachPartCommand(orderID, partID)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
type AttachPartCommand struct {
	orderPartIDs
	guard guard.ConstructorGuard
}

// NewAttachPartCommand validates its arguments and builds the command.
func NewAttachPartCommand(orderID, partID kernel.UUID) (AttachPartCommand, error) {
	ids, err := newOrderPartIDs(orderID, partID)
	if err != nil {
		return AttachPartCommand{}, err
	}
	return AttachPartCommand{orderPartIDs: ids, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through its constructor.
func (c AttachPartCommand) Validate() error {
	return c.guard.Validate(ErrAttachPartCommandIsNotConstructed)
}

// DetachPartCommand returns an attached part to stock.
type DetachPartCommand struct {
	orderPartIDs
	guard guard.ConstructorGuard
}

// NewDetachPartCommand validates its arguments and builds the command.
func NewDetachPartCommand(orderID, partID kernel.UUID) (DetachPartCommand, error) {
	ids, err := newOrderPartIDs(orderID, partID)
	if err != nil {
		return DetachPartCommand{}, err
	}
	return DetachPartCommand{orderPartIDs: ids, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through its constructor.
func (c DetachPartCommand) Validate() error {
	return c.guard.Validate(ErrDetachPartCommandIsNotConstructed)
}
