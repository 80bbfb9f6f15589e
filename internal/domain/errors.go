package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageUnavailable wraps any failure of the turn store or analytics sink.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrMalformedResponse means the backend answered without the expected field path.
	ErrMalformedResponse = errors.New("malformed backend response")

	// ErrModelBlocked means the model access policy refused the model for the domain.
	ErrModelBlocked = errors.New("model blocked by policy")
)

// ValidationError is a caller mistake; Message is safe to return to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UnsupportedModelError means no adapter serves the model identifier,
// or the model access policy refused it.
type UnsupportedModelError struct {
	ModelID string
	Reason  string
	Err     error
}

func (e *UnsupportedModelError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported model %q: %s", e.ModelID, e.Reason)
	}
	return fmt.Sprintf("unsupported model %q", e.ModelID)
}

func (e *UnsupportedModelError) Unwrap() error {
	return e.Err
}

// BackendInvocationError means the remote call failed or returned a payload
// the adapter could not read.
type BackendInvocationError struct {
	ModelID string
	Err     error
}

func (e *BackendInvocationError) Error() string {
	return fmt.Sprintf("invoke model %q: %v", e.ModelID, e.Err)
}

func (e *BackendInvocationError) Unwrap() error {
	return e.Err
}
