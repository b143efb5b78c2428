package commands

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand opens a service order for a customer's vehicle. Customer,
// vehicle and mechanic are owned by other systems and referenced by id only.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, vehicleID, nil, "brake noise")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerID  kernel.UUID
	vehicleID   kernel.UUID
	mechanicID  *kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order id. Participant rules are enforced by
// the ServiceOrder aggregate.
func NewCreateOrderCommand(
	orderID, customerID, vehicleID kernel.UUID,
	mechanicID *kernel.UUID,
	description string,
) (CreateOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID:     orderID,
		customerID:  customerID,
		vehicleID:   vehicleID,
		mechanicID:  mechanicID,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through its constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// VehicleID returns the vehicle to be serviced.
func (c CreateOrderCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// MechanicID returns the assigned mechanic, or nil.
func (c CreateOrderCommand) MechanicID() *kernel.UUID {
	return c.mechanicID
}

// Description returns the work description.
func (c CreateOrderCommand) Description() string {
	return c.description
}
