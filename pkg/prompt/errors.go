package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrRequired is returned by the required validator for blank answers.
	ErrRequired = errors.New("prompt: value is required")
)
