package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict indicates a uniqueness or state conflict, e.g. a concurrent
// conversion of the same pickup request.
var ErrConflict = errors.New("conflict")

// ErrDenied indicates that the access gate rejected the caller.
var ErrDenied = errors.New("denied")

// ErrAllocationExhausted indicates that tracking code generation kept
// colliding until the retry budget ran out.
var ErrAllocationExhausted = errors.New("tracking code allocation exhausted")

// ErrPartialConversion indicates that the shipment for a pickup request was
// created but the follow-up pickup status update failed. The shipment exists;
// the pickup request is still marked pending. No automatic compensation is
// performed, an operator must reconcile.
var ErrPartialConversion = errors.New("partial conversion: pickup status not updated")
