package order

import (
	"fmt"

	"autoservice/internal/pkg/errs"
)

// Status is the lifecycle state of a service order.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	// Open orders accept parts, tasks and labor cost changes.
	Open
	// Completed orders were closed after all required tasks were done.
	Completed
	// Cancelled orders returned their parts to stock.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Open:      "Open",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// Validate rejects Unknown and out of range values.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status name, or "Unknown" for values outside the enum.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ValidateMutable returns an invalid state error naming operation unless the status is Open.
func (s Status) ValidateMutable(operation string) error {
	if s != Open {
		return errs.NewInvalidStateError("service order", s.String(), operation)
	}
	return nil
}

// Close transitions Open -> Completed.
func (s Status) Close() (Status, error) {
	if err := s.ValidateMutable("close"); err != nil {
		return 0, err
	}
	return Completed, nil
}

// Cancel transitions Open -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.ValidateMutable("cancel"); err != nil {
		return 0, err
	}
	return Cancelled, nil
}
