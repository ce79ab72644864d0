package service

import "errors"

// Sentinel errors of the domain. Handlers map these onto HTTP statuses;
// anything not in this taxonomy surfaces as a generic server error.
var (
	ErrValidation       = errors.New("validation")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidReference = errors.New("invalid reference")
)
