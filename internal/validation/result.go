// Package validation contains the pure validation core that gates every
// organizer mutation: primitive format checks, per-entity validators, and the
// attendee CSV batch validator. Validators hold no state, perform no I/O, and
// never mutate their input; they only return field-tagged error lists.
package validation

import (
	"fmt"
	"strings"
)

// ValidationError identifies exactly one offending field and a human-readable
// reason. Batch-level CSV errors use the synthetic field "csv".
// swagger:model ValidationError
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationResult is the verdict of a validator. Valid is always derived as
// len(Errors) == 0, never set independently.
// swagger:model ValidationResult
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// newResult builds a ValidationResult from the accumulated errors, deriving
// Valid from the list length.
func newResult(errs []ValidationError) ValidationResult {
	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// Err returns nil when the result is valid, otherwise a *ValidationFailedError
// carrying the full result for the caller to surface per field.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationFailedError{Result: r}
}

// ValidationFailedError is returned by services when a validator rejects the
// input. Callers unwrap it with errors.As to render field-tagged errors.
type ValidationFailedError struct {
	Result ValidationResult
}

func (e *ValidationFailedError) Error() string {
	msgs := make([]string, 0, len(e.Result.Errors))
	for _, ve := range e.Result.Errors {
		msgs = append(msgs, ve.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}
