package domain

import "errors"

var (
	// ErrDuplicateBill is returned when a bill already exists for a trip.
	// The billings table's unique index on trip_id is the source of truth;
	// repositories translate the constraint violation into this error so
	// callers can treat it as recoverable.
	ErrDuplicateBill = errors.New("a bill already exists for this trip")

	// ErrDuplicateCode is returned when an agency or plant code collides
	// with an existing one.
	ErrDuplicateCode = errors.New("code already in use")

	ErrNotFound = errors.New("record not found")
)
