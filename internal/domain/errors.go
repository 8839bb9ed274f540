package domain

import "errors"

var (
	// ErrNotFound is returned when a seller, product, currency, payment or ticket lookup misses.
	ErrNotFound = errors.New("not found")

	// ErrStorage marks failures of the underlying persistence layer.
	ErrStorage = errors.New("storage failure")

	// ErrInvalidInput is returned for records submitted without their required fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidWeek is returned for week ids that are not of the form week-N.
	ErrInvalidWeek = errors.New("invalid week id")

	// ErrDuplicateCurrency is returned when a product already has a configuration for a currency name.
	ErrDuplicateCurrency = errors.New("currency already configured for product")
)
