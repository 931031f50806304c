package domain

import "errors"

// Sentinel errors for the four failure classes the pipeline distinguishes.
// Handlers map these to HTTP statuses with errors.Is.
var (
	// ErrUserNotFound means the requested user does not exist in the catalog.
	ErrUserNotFound = errors.New("user not found")

	// ErrScorerUnavailable means the scoring service failed, timed out or its
	// circuit breaker is open. The request fails; retries are the caller's call.
	ErrScorerUnavailable = errors.New("scoring service unavailable")

	// ErrScoreMismatch means the number of scores returned by the scoring
	// service does not match the number of features sent. Positional alignment
	// between candidates, features and scores can no longer be trusted, so the
	// request is always failed rather than truncated or padded.
	ErrScoreMismatch = errors.New("score count does not match candidate count")

	// ErrDuplicateCandidate means a movie appeared twice after merge, which
	// indicates a programming error rather than bad input.
	ErrDuplicateCandidate = errors.New("duplicate candidate after merge")
)
