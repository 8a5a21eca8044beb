package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgItemNotFound   = "item not found"
	ErrMsgRecipeNotFound = "recipe not found"

	// Server errors
	ErrMsgServerNotFound = "server not found"
	ErrMsgServerInactive = "server is not active"

	// Ranking errors
	ErrMsgProfessionRequired = "profession is required"
	ErrMsgInvalidSortMetric  = "invalid sort metric"
	ErrMsgInvalidLevelRange  = "invalid level range"

	// Price errors
	ErrMsgInvalidPrice = "invalid price"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
//
// None of these describe an unresolvable cost. A missing price, a missing recipe or a
// cyclic recipe graph is reported as an absent value, never as an error.
var (
	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)

	ErrServerNotFound = errors.New(ErrMsgServerNotFound)
	ErrServerInactive = errors.New(ErrMsgServerInactive)

	ErrProfessionRequired = errors.New(ErrMsgProfessionRequired)
	ErrInvalidSortMetric  = errors.New(ErrMsgInvalidSortMetric)
	ErrInvalidLevelRange  = errors.New(ErrMsgInvalidLevelRange)

	ErrInvalidPrice = errors.New(ErrMsgInvalidPrice)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
