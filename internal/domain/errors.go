package domain

import "errors"

var (
	// ErrEmptyInput is returned when a solve receives zero places.
	// Callers treat it as "no route", not as a failure.
	ErrEmptyInput = errors.New("no places to route")

	// ErrInvalidPlace wraps boundary validation failures for a single place.
	ErrInvalidPlace = errors.New("invalid place")

	ErrNotFound = errors.New("not found")
)
