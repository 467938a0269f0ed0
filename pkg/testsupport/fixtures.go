package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/goliatone/go-confform/pkg/client"
	"github.com/goliatone/go-confform/pkg/conference"
	"github.com/goliatone/go-confform/pkg/toast"
)

// Response scripts one CreateConference call.
type Response struct {
	Result client.Result
	Err    error
}

// StubCreator replays scripted responses and records every record it
// receives. When Gate is non-nil each call blocks until a value is received
// from it (or the context ends), letting tests hold a submission in flight.
type StubCreator struct {
	mu        sync.Mutex
	responses []Response
	calls     []conference.FormData

	Gate    chan struct{}
	Started chan conference.FormData
}

// NewStubCreator returns a creator that answers with responses in order and
// repeats the last one once the script is exhausted.
func NewStubCreator(responses ...Response) *StubCreator {
	return &StubCreator{responses: responses}
}

// CreateConference implements submission.Creator.
func (s *StubCreator) CreateConference(ctx context.Context, data conference.FormData) (client.Result, error) {
	s.mu.Lock()
	idx := len(s.calls)
	s.calls = append(s.calls, data)
	var resp Response
	switch {
	case len(s.responses) == 0:
		resp = Response{Result: client.Result{StatusCode: 201, Body: []byte(`{}`)}}
	case idx < len(s.responses):
		resp = s.responses[idx]
	default:
		resp = s.responses[len(s.responses)-1]
	}
	gate, started := s.Gate, s.Started
	s.mu.Unlock()

	if started != nil {
		started <- data
	}
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return client.Result{}, &client.TransportError{Method: "POST", URL: "stub", Err: ctx.Err()}
		}
	}
	return resp.Result, resp.Err
}

// Calls returns a copy of the records received so far.
func (s *StubCreator) Calls() []conference.FormData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]conference.FormData(nil), s.calls...)
}

// RecordingNotifier keeps every toast it receives.
type RecordingNotifier struct {
	mu     sync.Mutex
	toasts []toast.Toast
}

// Notify implements toast.Notifier.
func (n *RecordingNotifier) Notify(t toast.Toast) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.toasts = append(n.toasts, t)
}

// Messages returns the kind-prefixed toast messages, e.g. "success: ok".
func (n *RecordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.toasts))
	for _, t := range n.toasts {
		out = append(out, string(t.Kind)+": "+t.Message)
	}
	return out
}

// SampleFormData returns a record that passes validation.
func SampleFormData() conference.FormData {
	return conference.FormData{
		Name:               "GopherCon EU",
		SubmissionDeadline: "2026-02-15",
		Location:           "Berlin",
		Description:        "Three days of Go talks",
	}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
