package prompt

import "errors"

var (
	// ErrAborted signals the respondent aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoDriver is returned when a session is configured without a driver.
	ErrNoDriver = errors.New("prompt: driver is nil")
)
