// Package apperr defines the domain error kinds surfaced by the back office.
// Every kind is scoped to a single request; handlers translate kinds to HTTP
// status codes with errors.As and never retry.
package apperr

import "fmt"

// ValidationError reports malformed input, naming the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// Validation builds a ValidationError.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// InvalidTransition reports a lifecycle event not legal from the current
// state, including transitions lost to a concurrent writer.
type InvalidTransition struct {
	From  string
	Event string
}

func (e *InvalidTransition) Error() string {
	return fmt.Sprintf("cannot %s a plan in status %s", e.Event, e.From)
}

// BudgetExceeded reports a category allocation above the total budget at
// approval time, with the computed figures.
type BudgetExceeded struct {
	Allocated float64
	Total     float64
}

func (e *BudgetExceeded) Error() string {
	return fmt.Sprintf("allocated budget %.2f exceeds total budget %.2f", e.Allocated, e.Total)
}

// NotFound reports a missing record. Cross-tenant lookups surface as NotFound
// so existence never leaks across tenants.
type NotFound struct {
	Resource string
}

func (e *NotFound) Error() string {
	return e.Resource + " not found"
}

// DuplicatePeriod reports an existing plan for the same tenant, program and
// period at create time.
type DuplicatePeriod struct {
	ExistingID string
	Month      int
	Year       int
}

func (e *DuplicatePeriod) Error() string {
	return fmt.Sprintf("a plan for period %d/%d already exists (id %s)", e.Month, e.Year, e.ExistingID)
}
