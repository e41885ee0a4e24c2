package services

import "errors"

var (
	// ErrPolicyViolation gates record saves on the owner's tracked
	// category. The check itself belongs to the authorization layer; the
	// engine re-verifies it because save is the one mutating entry point.
	ErrPolicyViolation = errors.New("cycle tracking is only available for female owners")

	ErrMissingOwner       = errors.New("owner id is required")
	ErrMissingStartDate   = errors.New("start date is required")
	ErrInvalidDateRange   = errors.New("end date must be after start date")
	ErrDuplicateStartDate = errors.New("a cycle record with this start date already exists")
)
