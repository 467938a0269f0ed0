package tui

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-confform/pkg/toast"
)

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithToasts sets the queue the controller raises toasts on. The session
// drains and prints it after every submit.
func WithToasts(queue *toast.Queue) Option {
	return func(s *Session) {
		if queue != nil {
			s.toasts = queue
		}
	}
}

func WithStyles(styles Styles) Option {
	return func(s *Session) {
		s.styles = styles
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}
