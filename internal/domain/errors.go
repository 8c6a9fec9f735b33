package domain

import "errors"

// ErrNotFound is returned by store and service functions when no live record
// carries the requested identifier.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when a record fails the
// serial number or date format checks, or when an update would change the
// variant of an existing record.
// The console should catch it and re-prompt the operator.
var ErrValidation = errors.New("validation error")

// ValidationMessage is the fixed text attached to every format failure.
// It names both requirements and never says which field was wrong.
const ValidationMessage = "invalid input, please re-enter (date format: YYYY/MM/DD, serial number format: 99-999)"
