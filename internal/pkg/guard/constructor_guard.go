// Package guard tracks whether a value was produced by its constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in commands, queries and entities so that a zero
// value can be told apart from one built by NewX. The zero guard is invalid.
//
// Example:
//
//	type DraftPickOrderCommand struct {
//	    groups []roster.GroupEntry
//	    guard  guard.ConstructorGuard
//	}
//
//	func (c DraftPickOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrDraftPickOrderCommandIsNotConstructed)
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
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
