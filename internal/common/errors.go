// Package common provides shared utilities used across the application.
package common

import "errors"

// Common application errors.
var (
	// Input errors.
	ErrEmptyInput = errors.New("empty input text")

	// Storage errors.
	ErrNotFound        = errors.New("not found")
	ErrBuiltInCategory = errors.New("built-in categories cannot be deleted")
	ErrDuplicateEntry  = errors.New("duplicate entry")

	// ErrRemoteUnavailable marks remote-tier transport and status failures.
	// These are always recovered by falling through to the heuristic tier;
	// they never reach the end user.
	ErrRemoteUnavailable = errors.New("remote classifier unavailable")
)
