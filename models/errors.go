package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Assignment related errors
var (
	// ErrEventCapacityExceeded is returned when an assignment batch would push
	// the number of registered+attended volunteers past the event's capacity.
	ErrEventCapacityExceeded = errors.Wrap(BadParameterError, "event capacity exceeded")

	ErrDuplicateVolunteerIds = errors.Wrap(BadParameterError,
		"assignment batch contains duplicate volunteer ids")
)

// DB related errors
var (
	ErrIgnoreRollBackError = errors.New("ignore rollback error")
)
