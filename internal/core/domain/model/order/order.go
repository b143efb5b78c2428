package order

import (
	"errors"
	"fmt"
	"strings"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when a ServiceOrder was not created through
	// NewServiceOrder or RestoreServiceOrder.
	ErrOrderIsNotConstructed = errors.New("ServiceOrder must be created via NewServiceOrder constructor")
)

// ServiceOrder is the aggregate root for a single repair job.
//
// The order follows these invariants:
//   - a part identifier appears in the parts set at most once
//   - completed tasks are always a subset of required tasks
//   - labor cost is never negative
//   - Completed and Cancelled orders are never mutated again
//
// Stock of attached parts is not tracked here. Callers that attach or detach parts must
// adjust the part aggregate inside the same unit of work, see services.PartBinder.
type ServiceOrder struct {
	id         kernel.UUID
	customerID kernel.UUID
	vehicleID  kernel.UUID
	// mechanicID is nil while no mechanic is assigned
	mechanicID  *kernel.UUID
	description string

	parts          orderedSet[kernel.UUID]
	requiredTasks  orderedSet[Task]
	completedTasks orderedSet[Task]

	laborCost kernel.Money
	status    Status

	isConstructed bool
}

// NewServiceOrder opens a new order for a customer's vehicle. Labor cost starts at zero.
//
// Example:
//
//	o, err := order.NewServiceOrder(kernel.NewUUID(), customerID, vehicleID, nil, "annual service")
func NewServiceOrder(
	id, customerID, vehicleID kernel.UUID,
	mechanicID *kernel.UUID,
	description string,
) (*ServiceOrder, error) {
	o := &ServiceOrder{
		parts:          newOrderedSet[kernel.UUID](),
		requiredTasks:  newOrderedSet[Task](),
		completedTasks: newOrderedSet[Task](),
		laborCost:      kernel.ZeroMoney(),
		status:         Open,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParticipants(customerID, vehicleID, mechanicID),
	); err != nil {
		return nil, err
	}
	o.description = strings.TrimSpace(description)

	return o, nil
}

// RestoreServiceOrder rebuilds an order from persisted state. Besides the constructor
// rules it checks that the stored sets respect the aggregate invariants.
func RestoreServiceOrder(
	id, customerID, vehicleID kernel.UUID,
	mechanicID *kernel.UUID,
	description string,
	parts []kernel.UUID,
	requiredTasks, completedTasks []Task,
	laborCost kernel.Money,
	status Status,
) (*ServiceOrder, error) {
	o, err := NewServiceOrder(id, customerID, vehicleID, mechanicID, description)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), o.setLaborCost(laborCost)); err != nil {
		return nil, err
	}
	o.status = status

	for _, partID := range parts {
		if err = partID.Validate(); err != nil {
			return nil, err
		}
		o.parts.add(partID)
	}
	for _, task := range requiredTasks {
		o.requiredTasks.add(task)
	}
	for _, task := range completedTasks {
		if !o.requiredTasks.has(task) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"completed tasks are invalid",
				fmt.Errorf("%q is not a required task", task),
			)
		}
		o.completedTasks.add(task)
	}

	return o, nil
}

// Validate ensures the order was built by a constructor.
func (o *ServiceOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o *ServiceOrder) IsEqual(other *ServiceOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *ServiceOrder) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer who brought the vehicle in.
func (o *ServiceOrder) CustomerID() kernel.UUID {
	return o.customerID
}

// VehicleID returns the vehicle being serviced.
func (o *ServiceOrder) VehicleID() kernel.UUID {
	return o.vehicleID
}

// MechanicID returns the assigned mechanic.
// Returns nil if no mechanic is assigned.
func (o *ServiceOrder) MechanicID() *kernel.UUID {
	return o.mechanicID
}

// Description returns the free-text work description.
func (o *ServiceOrder) Description() string {
	return o.description
}

// LaborCost returns the labor part of the order's total cost.
func (o *ServiceOrder) LaborCost() kernel.Money {
	return o.laborCost
}

// Status returns the current lifecycle status of the order.
func (o *ServiceOrder) Status() Status {
	return o.status
}

// Completed mirrors the legacy boolean flag: true only for closed orders.
func (o *ServiceOrder) Completed() bool {
	return o.status == Completed
}

// Parts returns the attached part identifiers in attach order.
func (o *ServiceOrder) Parts() []kernel.UUID {
	return o.parts.values()
}

// RequiredTasks returns the required task labels in insertion order.
func (o *ServiceOrder) RequiredTasks() []Task {
	return o.requiredTasks.values()
}

// CompletedTasks returns the completed task labels in completion order.
func (o *ServiceOrder) CompletedTasks() []Task {
	return o.completedTasks.values()
}

// HasPart reports whether partID is attached.
func (o *ServiceOrder) HasPart(partID kernel.UUID) bool {
	return o.parts.has(partID)
}

// ValidateMutable fails with an invalid state error unless the order is Open.
func (o *ServiceOrder) ValidateMutable(operation string) error {
	return o.status.ValidateMutable(operation)
}

// AttachPart adds partID to the parts set. It reports false when the part was
// already attached, in which case nothing changes.
func (o *ServiceOrder) AttachPart(partID kernel.UUID) (bool, error) {
	if err := o.ValidateMutable("attach part to"); err != nil {
		return false, err
	}
	if err := partID.Validate(); err != nil {
		return false, err
	}
	return o.parts.add(partID), nil
}

// DetachPart removes partID from the parts set. It reports false when the part
// was not attached.
func (o *ServiceOrder) DetachPart(partID kernel.UUID) (bool, error) {
	if err := o.ValidateMutable("detach part from"); err != nil {
		return false, err
	}
	return o.parts.remove(partID), nil
}

// AddRequiredTask appends a task to the checklist. Adding an existing task is a no-op.
func (o *ServiceOrder) AddRequiredTask(task Task) error {
	if err := o.ValidateMutable("add required task to"); err != nil {
		return err
	}
	if _, err := NewTask(task.String()); err != nil {
		return err
	}
	o.requiredTasks.add(task)
	return nil
}

// CompleteTask marks a required task as done. Unknown and already completed
// tasks are rejected.
func (o *ServiceOrder) CompleteTask(task Task) error {
	if err := o.ValidateMutable("complete task of"); err != nil {
		return err
	}
	if !o.requiredTasks.has(task) {
		return errs.NewValueIsInvalidErrorWithCause(
			"task is invalid",
			fmt.Errorf("%q is not a required task", task),
		)
	}
	if !o.completedTasks.add(task) {
		return errs.NewValueIsInvalidErrorWithCause(
			"task is invalid",
			fmt.Errorf("%q is already completed", task),
		)
	}
	return nil
}

// CanBeClosed reports whether every required task has been completed.
// An order without required tasks can always be closed.
func (o *ServiceOrder) CanBeClosed() bool {
	for _, task := range o.requiredTasks.items {
		if !o.completedTasks.has(task) {
			return false
		}
	}
	return true
}

// Close moves an Open order whose checklist is done to Completed.
func (o *ServiceOrder) Close() error {
	newStatus, err := o.status.Close()
	if err != nil {
		return err
	}
	if !o.CanBeClosed() {
		return errs.NewInvalidStateErrorWithCause(
			"service order", o.status.String(), "close",
			fmt.Errorf("%d of %d required tasks completed", o.completedTasks.len(), o.requiredTasks.len()),
		)
	}
	o.status = newStatus
	return nil
}

// Cancel moves an Open order to Cancelled, empties its parts set and returns the
// identifiers that were attached so their units can be put back into stock.
func (o *ServiceOrder) Cancel() ([]kernel.UUID, error) {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return nil, err
	}
	released := o.parts.values()
	o.parts.clear()
	o.status = newStatus
	return released, nil
}

// UpdateLaborCost replaces the labor cost of an Open order.
func (o *ServiceOrder) UpdateLaborCost(cost kernel.Money) error {
	if err := o.ValidateMutable("update labor cost of"); err != nil {
		return err
	}
	return o.setLaborCost(cost)
}

// CompletionStatus renders the progress line, for example
// "IN_PROGRESS - 50.0% complete (1/2 tasks)".
func (o *ServiceOrder) CompletionStatus() string {
	switch o.status {
	case Completed:
		return "COMPLETED"
	case Cancelled:
		return "CANCELLED"
	}

	required := o.requiredTasks.len()
	done := 0
	for _, task := range o.completedTasks.items {
		if o.requiredTasks.has(task) {
			done++
		}
	}

	pct := 0.0
	if required > 0 {
		pct = float64(done) / float64(required) * 100
	}
	return fmt.Sprintf("IN_PROGRESS - %.1f%% complete (%d/%d tasks)", pct, done, required)
}

func (o *ServiceOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *ServiceOrder) setParticipants(customerID, vehicleID kernel.UUID, mechanicID *kernel.UUID) error {
	var err error
	if customerID.Validate() != nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("customer"))
	}
	if vehicleID.Validate() != nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("vehicle"))
	}
	if mechanicID != nil && mechanicID.Validate() != nil {
		err = errors.Join(err, errs.NewValueIsInvalidError("mechanic is invalid"))
	}
	if err != nil {
		return err
	}

	o.customerID = customerID
	o.vehicleID = vehicleID
	if mechanicID != nil {
		m := *mechanicID
		o.mechanicID = &m
	}
	return nil
}

func (o *ServiceOrder) setLaborCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	o.laborCost = cost
	return nil
}
