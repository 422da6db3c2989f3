package feed

import "errors"

var (
	// ErrFeedUnavailable is the single signal for any upstream failure while
	// fetching the activity feed. Timeouts, non-2xx statuses, malformed
	// bodies, and open circuits all collapse into this error so callers can
	// render one fallback without inspecting the cause.
	ErrFeedUnavailable = errors.New("activity feed unavailable")

	// ErrInvalidAccount indicates the caller passed an empty account name.
	// This is a caller mistake, not an upstream failure.
	ErrInvalidAccount = errors.New("account name must not be empty")

	// ErrInvalidLimit indicates the caller passed a non-positive limit.
	ErrInvalidLimit = errors.New("limit must be positive")
)
