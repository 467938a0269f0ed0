// Package submission implements the conference form controller: per-instance
// field state, the Idle/Submitting/Succeeded/Failed lifecycle and the single
// outbound request issued per submit action.
//
// A Controller guarantees at most one in-flight submission. A second Submit
// while a request is pending returns ErrSubmitInFlight without touching the
// network. Entering Submitting always clears the previous error message.
package submission
