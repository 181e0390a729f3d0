package domain

import (
	"errors"
	"fmt"
)

// Errors raised by a generation call. Every error is terminal for the call
// that raised it; nothing is retried.
var (
	// ErrEmptyRequest is returned before any network call when a request has
	// an empty prompt and no reference images.
	ErrEmptyRequest = errors.New("a prompt or at least one reference image is required")

	// ErrUnauthorized is returned when the access gate rejects a credential.
	ErrUnauthorized = errors.New("invalid or missing access code")
)

// RemoteError is a failure reported by (or while talking to) the remote
// image-generation API. The message is surfaced to the user largely verbatim.
type RemoteError struct {
	StatusCode int // 0 for transport-level failures
	Message    string
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("remote API error (status %d): %s", e.StatusCode, e.Message)
	}
	return e.Message
}

// StoreError wraps a local persistence failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("image store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
