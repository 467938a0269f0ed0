package submission

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-confform/pkg/conference"
	"github.com/goliatone/go-confform/pkg/toast"
)

// Observer is called once per completed round trip, after the state has
// been updated.
type Observer func(Outcome)

// Option configures a Controller.
type Option func(*Controller)

// WithNotifier routes success/failure toasts to n.
func WithNotifier(n toast.Notifier) Option {
	return func(c *Controller) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithValidation toggles the required/date pre-flight check. It is enabled
// by default; disable it when the host UI already enforces the constraints.
func WithValidation(enabled bool) Option {
	return func(c *Controller) {
		c.validate = enabled
	}
}

// WithInitialData seeds the form fields.
func WithInitialData(data conference.FormData) Option {
	return func(c *Controller) {
		c.data = data
	}
}

// WithObserver registers a hook invoked after every round trip.
func WithObserver(fn Observer) Option {
	return func(c *Controller) {
		if fn != nil {
			c.observers = append(c.observers, fn)
		}
	}
}
