package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User/ledger errors
	ErrMsgUserNotFound = "user not found"

	// Giveaway errors
	ErrMsgGiveawayNotFound  = "giveaway not found"
	ErrMsgGiveawayActive    = "a giveaway is already active"
	ErrMsgGiveawayEnded     = "giveaway has already ended"
	ErrMsgNotEnoughEntrants = "not enough eligible entrants"

	// Calculator errors
	ErrMsgStageNotFound = "no data for boss stage"
	ErrMsgLevelNotFound = "no data for level"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Storage errors
	ErrMsgStorage = "storage failure"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User/ledger errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Giveaway errors
	ErrGiveawayNotFound  = errors.New(ErrMsgGiveawayNotFound)
	ErrGiveawayActive    = errors.New(ErrMsgGiveawayActive)
	ErrGiveawayEnded     = errors.New(ErrMsgGiveawayEnded)
	ErrNotEnoughEntrants = errors.New(ErrMsgNotEnoughEntrants)

	// Calculator errors
	ErrStageNotFound = errors.New(ErrMsgStageNotFound)
	ErrLevelNotFound = errors.New(ErrMsgLevelNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Storage errors
	ErrStorage = errors.New(ErrMsgStorage)
)
