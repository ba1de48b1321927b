package domain

import "errors"

var (
	// ErrNotFound signals a referenced user, match or permission record is
	// absent. Distinct from an empty result set, which is not an error.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidStatus signals an unrecognized match status transition.
	ErrInvalidStatus = errors.New("invalid match status")

	// ErrInvalidCoordinates signals latitude or longitude out of range.
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrMatchBlocked signals an action on a pair whose match is blocked.
	ErrMatchBlocked = errors.New("match is blocked")

	// ErrSelfAction signals a user acting on their own profile.
	ErrSelfAction = errors.New("cannot act on own profile")

	// ErrInvalidSource signals an unrecognized location source value.
	ErrInvalidSource = errors.New("invalid location source")
)
