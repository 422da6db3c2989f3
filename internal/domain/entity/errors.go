package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the content store and the use case layer.
var (
	// ErrNotFound means a lookup by name (for example a project) matched
	// nothing in the portfolio content.
	ErrNotFound = errors.New("entity not found")

	// ErrValidationFailed means the loaded content or an incoming entity
	// failed a structural check.
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError reports which field of an entity failed validation and why.
// Handlers translate it into a 400 response with the field name intact.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
