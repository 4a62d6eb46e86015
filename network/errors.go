// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors below unwrap to them so callers can branch
// with errors.Is and extract details with errors.As.
var (
	// ErrDuplicateEntity indicates an Add* call reused a name within one collection.
	ErrDuplicateEntity = errors.New("network: duplicate entity")

	// ErrUnresolvedReference indicates a bus name unknown to the index resolver.
	ErrUnresolvedReference = errors.New("network: unresolved bus reference")
)

// DuplicateEntityError reports an Add* call whose name is already taken in
// the target collection.
type DuplicateEntityError struct {
	Kind    Kind   // collection that rejected the name
	Name    string // colliding name
	Circuit string // owning circuit name
}

func (e *DuplicateEntityError) Error() string {
	return fmt.Sprintf("network: %s %q already exists in circuit %q", e.Kind, e.Name, e.Circuit)
}

func (e *DuplicateEntityError) Unwrap() error { return ErrDuplicateEntity }

// UnresolvedReferenceError reports a bus reference that could not be turned
// into an index. Equipment is empty when the reference was resolved on its own.
type UnresolvedReferenceError struct {
	Kind      Kind
	Equipment string
	Bus       BusRef
}

func (e *UnresolvedReferenceError) Error() string {
	if e.Equipment == "" {
		return fmt.Sprintf("network: bus %q is not registered", e.Bus.Name())
	}
	return fmt.Sprintf("network: %s %q references unregistered bus %q", e.Kind, e.Equipment, e.Bus.Name())
}

func (e *UnresolvedReferenceError) Unwrap() error { return ErrUnresolvedReference }
