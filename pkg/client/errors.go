package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// FallbackMessage is shown when no server-provided reason is available.
const FallbackMessage = "Failed to create conference"

// TransportError reports that the request could not be completed.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("client: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RejectionError reports a completed round trip with a non-success status.
// Reason carries the optional "error" field of the JSON body.
type RejectionError struct {
	StatusCode int
	Reason     string
	Body       []byte
}

func (e *RejectionError) Error() string {
	status := fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	if reason := strings.TrimSpace(e.Reason); reason != "" {
		return fmt.Sprintf("client: create conference rejected (%s): %s", status, reason)
	}
	return fmt.Sprintf("client: create conference rejected (%s)", status)
}

// ResponseError reports a success status whose body could not be decoded.
type ResponseError struct {
	StatusCode int
	Err        error
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("client: decode response (status %d): %v", e.StatusCode, e.Err)
}

func (e *ResponseError) Unwrap() error { return e.Err }

var errInvalidJSON = errors.New("response body is not valid JSON")

// UserMessage collapses any submission error into the text displayed to the
// user: the server reason of a rejection when present, the fallback
// otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var rejection *RejectionError
	if errors.As(err, &rejection) {
		if reason := strings.TrimSpace(rejection.Reason); reason != "" {
			return reason
		}
	}
	return FallbackMessage
}

// IsTransport reports whether err stems from a failed round trip.
func IsTransport(err error) bool {
	var transport *TransportError
	return errors.As(err, &transport)
}

// IsRejection reports whether err is an application-level rejection.
func IsRejection(err error) bool {
	var rejection *RejectionError
	return errors.As(err, &rejection)
}
