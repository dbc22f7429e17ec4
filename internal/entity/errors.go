package entity

import "fmt"

// Domain error taxonomy. All rejections are surfaced to the caller
// before any persistence attempt; none are retried internally except
// the bounded retry inside the numbering generator.

// ValidationError marks malformed or missing required input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// DuplicateNumberError marks a custom card number that is already in
// use by another card.
type DuplicateNumberError struct {
	Number string
}

func (e *DuplicateNumberError) Error() string {
	return fmt.Sprintf("gift card number %s is already in use", e.Number)
}

// NoOpError marks a status-change request whose requested status
// equals the current one. It is a rejected no-op, not a system fault.
type NoOpError struct {
	Status GiftCardStatus
}

func (e *NoOpError) Error() string {
	return fmt.Sprintf("no change requested: card is already %s", e.Status)
}

// PreconditionError marks an operation attempted on a record missing
// required prior state (e.g. extending a card that was never delivered).
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Reason
}

// PermissionError marks a transition the actor's role does not allow.
type PermissionError struct {
	Role UserRole
	From GiftCardStatus
	To   GiftCardStatus
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("role %s may not change status from %s to %s", e.Role, e.From, e.To)
}

// NotFoundError marks an id or number that resolves to no record.
type NotFoundError struct {
	Resource string
	Ref      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.Ref)
}

// IOError wraps an underlying data-store failure. Mutating operations
// propagate it; audit-sink failures are swallowed at the call site.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
