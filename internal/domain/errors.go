package domain

import "errors"

// Sentinel errors shared by services and delivery.
var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrSubmissionInProgress = errors.New("another submission is in progress")
)
