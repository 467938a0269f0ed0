// Package tui drives the conference form from an interactive terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-confform/pkg/button"
	"github.com/goliatone/go-confform/pkg/conference"
	"github.com/goliatone/go-confform/pkg/render"
	"github.com/goliatone/go-confform/pkg/submission"
	"github.com/goliatone/go-confform/pkg/toast"
)

const (
	confirmMessage = "Create this conference?"
	retryMessage   = "Try again?"
)

// Session walks a user through one form instance: prompt the fields, confirm,
// submit, report. After a failure the user may resubmit; nothing is retried
// automatically.
type Session struct {
	controller *submission.Controller
	driver     PromptDriver
	toasts     *toast.Queue
	styles     Styles
	logger     zerolog.Logger
}

// NewSession binds a session to controller. The controller must raise its
// toasts on the same queue passed with WithToasts for them to be printed.
func NewSession(controller *submission.Controller, options ...Option) (*Session, error) {
	if controller == nil {
		return nil, errors.New("tui: controller is required")
	}
	s := &Session{
		controller: controller,
		styles:     DefaultStyles(),
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	if s.toasts == nil {
		s.toasts = toast.NewQueue(toast.DefaultQueueLimit)
	}
	return s, nil
}

// Run returns the outcome of the last submit. ErrDeclined is returned when
// the user declines the confirmation, ErrAborted on interrupt.
func (s *Session) Run(ctx context.Context) (submission.Outcome, error) {
	if err := s.driver.Info(ctx, s.styles.Title.Render(render.Title)); err != nil {
		return submission.Outcome{}, err
	}

	for {
		if err := s.promptFields(ctx); err != nil {
			return submission.Outcome{}, err
		}

		ok, err := s.driver.Confirm(ctx, ConfirmConfig{Message: confirmMessage, Default: true})
		if err != nil {
			return submission.Outcome{}, err
		}
		if !ok {
			return submission.Outcome{}, ErrDeclined
		}

		outcome, err := s.submit(ctx)
		if err != nil {
			var verrs conference.ValidationErrors
			if !errors.As(err, &verrs) {
				return outcome, err
			}
			if err := s.reportValidation(ctx, verrs); err != nil {
				return outcome, err
			}
			continue
		}
		if outcome.Succeeded() {
			return outcome, nil
		}

		retry, err := s.driver.Confirm(ctx, ConfirmConfig{Message: retryMessage, Default: true})
		if err != nil {
			return outcome, err
		}
		if !retry {
			return outcome, nil
		}
	}
}

// promptFields asks for every field, defaulting to the controller's current
// values so a retry only needs the corrections.
func (s *Session) promptFields(ctx context.Context) error {
	data := s.controller.State().Data
	for _, meta := range conference.Metadata() {
		value, err := s.promptField(ctx, meta, data.Value(meta.Field))
		if err != nil {
			return err
		}
		s.controller.OnFieldChange(meta.Field.String(), value)
	}
	return nil
}

func (s *Session) promptField(ctx context.Context, meta conference.FieldMeta, current string) (string, error) {
	message := meta.Label
	if !meta.Required {
		message += " (optional)"
	}

	if meta.Kind == conference.InputTextarea {
		return s.driver.TextArea(ctx, TextAreaConfig{
			Message: message,
			Default: current,
			Help:    meta.Placeholder,
		})
	}

	help := meta.Placeholder
	if meta.Kind == conference.InputDate {
		help = "Date as YYYY-MM-DD"
	}
	return s.driver.Input(ctx, InputConfig{
		Message:   message,
		Default:   current,
		Help:      help,
		Validator: fieldValidator(meta),
	})
}

// fieldValidator mirrors the record rules for a single field so the prompt
// can reject a value before moving on.
func fieldValidator(meta conference.FieldMeta) func(string) error {
	return func(value string) error {
		if meta.Required && value == "" {
			return fmt.Errorf("%s is required", meta.Label)
		}
		if meta.Kind == conference.InputDate && value != "" {
			if _, err := time.Parse(conference.DeadlineLayout, value); err != nil {
				return fmt.Errorf("%s must be a date (YYYY-MM-DD)", meta.Label)
			}
		}
		return nil
	}
}

func (s *Session) submit(ctx context.Context) (submission.Outcome, error) {
	state := s.controller.State()
	pending := RenderButton(
		(submission.State{Status: submission.StatusSubmitting}).ButtonLabel(),
		button.Config{},
		true,
	)
	if err := s.driver.Info(ctx, pending); err != nil {
		return submission.Outcome{}, err
	}
	s.logger.Debug().Str("name", state.Data.Name).Msg("tui: submitting")

	outcome, err := s.controller.Submit(ctx)
	if err != nil {
		return outcome, err
	}

	for _, t := range s.toasts.Drain() {
		if err := s.driver.Info(ctx, s.styles.Toast(t)); err != nil {
			return outcome, err
		}
	}
	if msg, ok := s.controller.State().ErrorMessage(); ok {
		if err := s.driver.Info(ctx, s.styles.Error.Render(msg)); err != nil {
			return outcome, err
		}
	}
	return outcome, nil
}

func (s *Session) reportValidation(ctx context.Context, verrs conference.ValidationErrors) error {
	lines := make([]string, 0, len(verrs))
	for _, msg := range verrs {
		lines = append(lines, msg)
	}
	sort.Strings(lines)
	return s.driver.Info(ctx, s.styles.Error.Render(fmt.Sprintf("Please fix: %s", strings.Join(lines, "; "))))
}
