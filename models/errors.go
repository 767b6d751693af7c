package models

import "github.com/cockroachdb/errors"

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Trip and claim lifecycle errors
var (
	ErrTripNotCompleted      = errors.Wrap(BadParameterError, "trip is not completed")
	ErrClaimAlreadyProcessed = errors.Wrap(ConflictError, "an auto-generated claim already exists for this trip")
)
