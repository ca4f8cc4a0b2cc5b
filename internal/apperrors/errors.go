package apperrors

import (
	"errors"
)

// ErrNotFound indicates that a requested resource could not be found,
// e.g. an unknown date or a place that does not exist on that date.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks,
// e.g. a malformed access code.
var ErrValidation = errors.New("validation error")

// ErrAlreadyBooked indicates a booking conflict: the (date, place) slot
// is already taken.
var ErrAlreadyBooked = errors.New("place already booked")

// ErrUnauthorized indicates that the access code was rejected.
var ErrUnauthorized = errors.New("unauthorized")

// ErrUnavailable indicates a transport-level failure talking to the
// booking service (network error, timeout, unexpected status).
var ErrUnavailable = errors.New("booking service unavailable")
