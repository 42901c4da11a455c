package submit

import (
	"errors"
	"fmt"
)

var (
	// Step data did not validate, surfaced inline, never reaches submission
	ErrStepIncomplete = errors.New("submit: previous steps are incomplete")

	// Submit was requested outside the preview state
	ErrNotInPreview = errors.New("submit: not in preview")

	// The mandatory preview dwell time has not elapsed yet
	ErrCooldownActive = errors.New("submit: preview cooldown still active")

	// Another submission is in flight for the same owner
	ErrAlreadyInFlight = errors.New("submit: submission already in flight for this owner")

	// Phase failures the caller branches on, each wraps its cause
	ErrDocumentGeneration = errors.New("submit: document generation failed")
	ErrUpload             = errors.New("submit: document upload failed")
	ErrLedgerWrite        = errors.New("submit: blockchain submission failed")
)

// ValidationError carries the per-field causes from the validator so the
// caller can surface them inline
type ValidationError struct {
	cause error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("submit: step validation failed: %s", e.cause)
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}
