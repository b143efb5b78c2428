package commands

import (
	"errors"

	"autoservice/internal/core/domain/model/kernel"
	"autoservice/internal/core/domain/model/order"
	"autoservice/internal/pkg/guard"
)

var (
	ErrAddRequiredTaskCommandIsNotConstructed = errors.New(
		"AddRequiredTaskCommand must be created via NewAddRequiredTaskCommand constructor",
	)
	ErrCompleteTaskCommandIsNotConstructed = errors.New(
		"CompleteTaskCommand must be created via NewCompleteTaskCommand constructor",
	)
)

type orderTask struct {
	orderID kernel.UUID
	task    order.Task
}

// newOrderTask normalizes the label with order.NewTask, so commands always carry
// a trimmed, non-empty label of at most 255 characters.
func newOrderTask(orderID kernel.UUID, label string) (orderTask, error) {
	task, taskErr := order.NewTask(label)
	if err := errors.Join(orderID.Validate(), taskErr); err != nil {
		return orderTask{}, err
	}
	return orderTask{orderID: orderID, task: task}, nil
}

// OrderID returns the target order.
func (c orderTask) OrderID() kernel.UUID {
	return c.orderID
}

// Task returns the task label.
func (c orderTask) Task() order.Task {
	return c.task
}

// AddRequiredTaskCommand adds a label to the order checklist.
type AddRequiredTaskCommand struct {
	orderTask
	guard guard.ConstructorGuard
}

// NewAddRequiredTaskCommand validates its arguments and builds the command.
func NewAddRequiredTaskCommand(orderID kernel.UUID, label string) (AddRequiredTaskCommand, error) {
	t, err := newOrderTask(orderID, label)
	if err != nil {
		return AddRequiredTaskCommand{}, err
	}
	return AddRequiredTaskCommand{orderTask: t, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through its constructor.
func (c AddRequiredTaskCommand) Validate() error {
	return c.guard.Validate(ErrAddRequiredTaskCommandIsNotConstructed)
}

// CompleteTaskCommand marks a required label as done.
type CompleteTaskCommand struct {
	orderTask
	guard guard.ConstructorGuard
}

// NewCompleteTaskCommand validates its arguments and builds the command.
func NewCompleteTaskCommand(orderID kernel.UUID, label string) (CompleteTaskCommand, error) {
	t, err := newOrderTask(orderID, label)
	if err != nil {
		return CompleteTaskCommand{}, err
	}
	return CompleteTaskCommand{orderTask: t, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through its constructor.
func (c CompleteTaskCommand) Validate() error {
	return c.guard.Validate(ErrCompleteTaskCommandIsNotConstructed)
}
