package submission

import (
	"time"

	"github.com/goliatone/go-confform/pkg/client"
	"github.com/goliatone/go-confform/pkg/conference"
)

const (
	// SuccessToast is raised after the endpoint accepts a record.
	SuccessToast = "Conference created successfully!"
	// FailureToast is raised after any failed attempt.
	FailureToast = "Failed to create conference"

	labelIdle       = "Create Conference"
	labelSubmitting = "Creating..."
)

// State is an immutable snapshot of a controller.
type State struct {
	Data   conference.FormData
	Status Status
	// Error is nil unless Status is StatusFailed.
	Error *string
}

// Interactive reports whether the submit trigger should accept input.
func (s State) Interactive() bool {
	return s.Status != StatusSubmitting
}

// ErrorMessage returns the displayed error, if any.
func (s State) ErrorMessage() (string, bool) {
	if s.Error == nil {
		return "", false
	}
	return *s.Error, true
}

// ButtonLabel is the caption of the submit trigger for this state.
func (s State) ButtonLabel() string {
	if s.Status == StatusSubmitting {
		return labelSubmitting
	}
	return labelIdle
}

// Outcome reports how one submit action ended.
type Outcome struct {
	Attempt uint64
	Status  Status
	// Message is the success toast text, or the error message on failure.
	Message string
	// Err is the round-trip failure; nil on success.
	Err     error
	Result  client.Result
	Elapsed time.Duration
}

// Succeeded reports whether the endpoint accepted the record.
func (o Outcome) Succeeded() bool {
	return o.Status == StatusSucceeded
}
