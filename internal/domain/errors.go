package domain

import "errors"

// ErrValidationInProgress is returned when a validation is requested while
// another is in flight. Requests are rejected, never queued.
var ErrValidationInProgress = errors.New("validation already in progress")
