// Package guard provides the construction guard embedded by commands, queries and
// value objects that must only be built through their validating constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes a value built by its constructor from a zero value.
// Embed it as a private field, set it with NewConstructorGuard inside the constructor
// and call Validate from the owner's Validate method.
//
// Example:
//
//	type AttachPartCommand struct {
//	    orderID kernel.UUID
//	    partID  kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c AttachPartCommand) Validate() error {
//	    return c.guard.Validate(ErrAttachPartCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
