package utils

import "fmt"

// NotFoundError marks an unknown agency or service reference. It is
// surfaced to the caller as-is.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}

func NewNotFoundError(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// PersistenceError wraps a store failure during a read or write. Writes
// are idempotent upserts, so callers may retry safely.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// ConfigurationError marks a stored schedule blob that failed to
// decode. The affected service is treated as offering nothing; the
// error is logged for operators, never returned to booking callers.
type ConfigurationError struct {
	AgencyID string
	Err      error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("corrupt stored schedule for agency %s: %v", e.AgencyID, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func NewConfigurationError(agencyID string, err error) error {
	return &ConfigurationError{AgencyID: agencyID, Err: err}
}

// InvalidQueryError marks an availability query whose date or time
// could not be parsed.
type InvalidQueryError struct {
	Field string
	Value string
}

func (e *InvalidQueryError) Error() string {
	return fmt.Sprintf("invalid query %s %q", e.Field, e.Value)
}

func NewInvalidQueryError(field, value string) error {
	return &InvalidQueryError{Field: field, Value: value}
}
