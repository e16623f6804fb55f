package helper

import "errors"

// Service-level error taxonomy. Controllers translate these to HTTP codes via
// FromAppError; anything not listed here falls through to a generic 500.
var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicate       = errors.New("member with this Mobile, Aadhaar, or UTR already exists and is not rejected")
	ErrInvalidArgument = errors.New("invalid status provided")
)
