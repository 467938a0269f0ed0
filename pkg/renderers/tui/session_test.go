package tui

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-confform/pkg/client"
	"github.com/goliatone/go-confform/pkg/conference"
	"github.com/goliatone/go-confform/pkg/submission"
	"github.com/goliatone/go-confform/pkg/testsupport"
	"github.com/goliatone/go-confform/pkg/toast"
)

type stubDriver struct {
	inputs       []string
	textAreas    []string
	confirm      []bool
	infoMessages []string
	inputConfigs []InputConfig
	inputPos     int
	textPos      int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputConfigs = append(s.inputConfigs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func (s *stubDriver) printed(fragment string) bool {
	for _, msg := range s.infoMessages {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}

func newSession(t *testing.T, creator submission.Creator, driver PromptDriver) *Session {
	t.Helper()
	queue := toast.NewQueue(toast.DefaultQueueLimit)
	controller := submission.New(creator, submission.WithNotifier(queue))
	session, err := NewSession(controller, WithPromptDriver(driver), WithToasts(queue))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return session
}

func TestSession_SubmitsPromptedRecord(t *testing.T) {
	sample := testsupport.SampleFormData()
	creator := testsupport.NewStubCreator()
	driver := &stubDriver{
		inputs:    []string{sample.Name, sample.SubmissionDeadline, sample.Location},
		textAreas: []string{sample.Description},
		confirm:   []bool{true},
	}

	outcome, err := newSession(t, creator, driver).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !outcome.Succeeded() {
		t.Fatalf("expected success, got %+v", outcome)
	}
	if diff := cmp.Diff([]conference.FormData{sample}, creator.Calls()); diff != "" {
		t.Fatalf("submitted records mismatch (-want +got):\n%s", diff)
	}
	if !driver.printed("Create a Conference") {
		t.Fatalf("expected heading, got %v", driver.infoMessages)
	}
	if !driver.printed("Creating...") {
		t.Fatalf("expected pending button, got %v", driver.infoMessages)
	}
	if !driver.printed(submission.SuccessToast) {
		t.Fatalf("expected success toast, got %v", driver.infoMessages)
	}
}

func TestSession_PromptConfiguration(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"X", "2026-01-01", "Y"},
		textAreas: []string{""},
		confirm:   []bool{true},
	}
	if _, err := newSession(t, testsupport.NewStubCreator(), driver).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(driver.inputConfigs) != 3 {
		t.Fatalf("expected three input prompts, got %d", len(driver.inputConfigs))
	}
	messages := []string{driver.inputConfigs[0].Message, driver.inputConfigs[1].Message, driver.inputConfigs[2].Message}
	if diff := cmp.Diff([]string{"Conference Name", "Submission Deadline", "Location"}, messages); diff != "" {
		t.Fatalf("prompt messages mismatch (-want +got):\n%s", diff)
	}

	deadline := driver.inputConfigs[1].Validator
	if deadline == nil {
		t.Fatalf("expected deadline validator")
	}
	if err := deadline("2026-02-30"); err == nil {
		t.Fatalf("expected invalid date to be rejected")
	}
	if err := deadline(""); err == nil {
		t.Fatalf("expected empty deadline to be rejected")
	}
	if err := deadline("2026-02-15"); err != nil {
		t.Fatalf("expected valid date, got %v", err)
	}
}

func TestSession_RetryAfterFailure(t *testing.T) {
	sample := testsupport.SampleFormData()
	creator := testsupport.NewStubCreator(
		testsupport.Response{Err: &client.RejectionError{StatusCode: http.StatusConflict, Reason: "Name already taken"}},
		testsupport.Response{Result: client.Result{StatusCode: http.StatusCreated, Body: []byte(`{}`)}},
	)
	driver := &stubDriver{
		inputs:    []string{sample.Name, sample.SubmissionDeadline, sample.Location, sample.Name + " 2", sample.SubmissionDeadline, sample.Location},
		textAreas: []string{sample.Description, sample.Description},
		confirm:   []bool{true, true, true},
	}

	session := newSession(t, creator, driver)
	outcome, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !outcome.Succeeded() || outcome.Attempt != 2 {
		t.Fatalf("expected second attempt to succeed, got %+v", outcome)
	}
	if len(creator.Calls()) != 2 {
		t.Fatalf("expected exactly two requests, got %d", len(creator.Calls()))
	}
	if !driver.printed("Name already taken") {
		t.Fatalf("expected server reason printed, got %v", driver.infoMessages)
	}
	if !driver.printed(submission.FailureToast) {
		t.Fatalf("expected failure toast printed, got %v", driver.infoMessages)
	}
	if got := driver.inputConfigs[3].Default; got != sample.Name {
		t.Fatalf("expected retry prompt to default to the kept value, got %q", got)
	}
}

func TestSession_FailureWithoutRetry(t *testing.T) {
	creator := testsupport.NewStubCreator(testsupport.Response{
		Err: &client.TransportError{Method: http.MethodPost, URL: "http://x", Err: errors.New("connection refused")},
	})
	driver := &stubDriver{
		inputs:    []string{"X", "2026-01-01", "Y"},
		textAreas: []string{""},
		confirm:   []bool{true, false},
	}

	outcome, err := newSession(t, creator, driver).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if outcome.Succeeded() || outcome.Status != submission.StatusFailed {
		t.Fatalf("expected failed outcome, got %+v", outcome)
	}
	if !driver.printed(client.FallbackMessage) {
		t.Fatalf("expected fallback message, got %v", driver.infoMessages)
	}
}

func TestSession_ValidationLoopsBackToPrompts(t *testing.T) {
	creator := testsupport.NewStubCreator()
	driver := &stubDriver{
		inputs:    []string{"", "2026-01-01", "Y", "Named", "2026-01-01", "Y"},
		textAreas: []string{"", ""},
		confirm:   []bool{true, true},
	}

	outcome, err := newSession(t, creator, driver).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !outcome.Succeeded() {
		t.Fatalf("expected success, got %+v", outcome)
	}
	if len(creator.Calls()) != 1 {
		t.Fatalf("expected the invalid record not to be sent, got %d calls", len(creator.Calls()))
	}
	if !driver.printed("Conference Name is required") {
		t.Fatalf("expected validation message, got %v", driver.infoMessages)
	}
}

func TestSession_Declined(t *testing.T) {
	creator := testsupport.NewStubCreator()
	driver := &stubDriver{
		inputs:    []string{"X", "2026-01-01", "Y"},
		textAreas: []string{""},
		confirm:   []bool{false},
	}

	_, err := newSession(t, creator, driver).Run(context.Background())
	if !errors.Is(err, ErrDeclined) {
		t.Fatalf("expected ErrDeclined, got %v", err)
	}
	if len(creator.Calls()) != 0 {
		t.Fatalf("expected no request")
	}
}

func TestNewSession_RequiresController(t *testing.T) {
	if _, err := NewSession(nil); err == nil {
		t.Fatalf("expected error for nil controller")
	}
}
