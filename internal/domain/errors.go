package domain

import "errors"

// Scheduler errors. None of them is fatal: the affected event is skipped for the current tick.
var (
	ErrMalformedTime       = errors.New("malformed session time")
	ErrUnresolvedReference = errors.New("unresolved reference")
	ErrDelivery            = errors.New("reminder delivery failed")
)

// Command errors, turned into user facing replies by the handlers.
var (
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrNameMismatch    = errors.New("name does not match")
	ErrInvalidArgument = errors.New("invalid argument")
)
