package submission

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-confform/pkg/client"
	"github.com/goliatone/go-confform/pkg/conference"
	"github.com/goliatone/go-confform/pkg/toast"
)

// Creator sends one conference record to the creation endpoint.
// *client.Client satisfies it.
type Creator interface {
	CreateConference(ctx context.Context, data conference.FormData) (client.Result, error)
}

// Controller owns the state of one form instance.
type Controller struct {
	mu sync.Mutex

	creator   Creator
	notifier  toast.Notifier
	logger    zerolog.Logger
	validate  bool
	observers []Observer

	data     conference.FormData
	status   Status
	errMsg   *string
	attempts uint64
}

// New constructs a controller in the Idle state with empty fields.
func New(creator Creator, options ...Option) *Controller {
	c := &Controller{
		creator:  creator,
		notifier: toast.Func(nil),
		logger:   zerolog.Nop(),
		validate: true,
		data:     conference.Empty(),
		status:   StatusIdle,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// State returns a snapshot of the controller.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() State {
	state := State{Data: c.data, Status: c.status}
	if c.errMsg != nil {
		msg := *c.errMsg
		state.Error = &msg
	}
	return state
}

// OnFieldChange records value for the named field. Unknown names are
// ignored. An edit after a completed attempt returns the form to Idle and
// clears the displayed error; an edit during an attempt keeps Submitting.
func (c *Controller) OnFieldChange(name, value string) {
	field, ok := conference.ParseField(name)
	if !ok {
		c.logger.Debug().Str("field", name).Msg("ignoring change for unknown field")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.data, _ = c.data.With(field, value)
	if c.status == StatusFailed || c.status == StatusSucceeded {
		c.status = StatusIdle
		c.errMsg = nil
	}
}

// Submit sends the current fields as one record. The returned error is
// non-nil only when the submit action was refused (ErrSubmitInFlight,
// validation failure, missing creator); round-trip failures are reported
// through Outcome.Err and the Failed state.
func (c *Controller) Submit(ctx context.Context) (Outcome, error) {
	c.mu.Lock()
	if c.status == StatusSubmitting {
		c.mu.Unlock()
		c.logger.Debug().Msg("submit ignored: request already in flight")
		return Outcome{Status: StatusSubmitting}, ErrSubmitInFlight
	}
	if c.creator == nil {
		status := c.status
		c.mu.Unlock()
		return Outcome{Status: status}, errors.New("submission: creator is nil")
	}
	snapshot := c.data
	if c.validate {
		if err := snapshot.Validate(); err != nil {
			status := c.status
			c.mu.Unlock()
			return Outcome{Status: status}, err
		}
	}
	c.status = StatusSubmitting
	c.errMsg = nil
	c.attempts++
	attempt := c.attempts
	c.mu.Unlock()

	logger := c.logger.With().Uint64("attempt", attempt).Logger()
	logger.Debug().Str("name", snapshot.Name).Msg("submitting conference")

	settled := false
	defer func() {
		if settled {
			return
		}
		// The creator panicked; leave the form usable before unwinding.
		c.mu.Lock()
		msg := client.FallbackMessage
		c.status = StatusFailed
		c.errMsg = &msg
		c.mu.Unlock()
	}()

	started := time.Now()
	result, err := c.creator.CreateConference(ctx, snapshot)
	outcome := Outcome{
		Attempt: attempt,
		Err:     err,
		Result:  result,
		Elapsed: time.Since(started),
	}

	var note toast.Toast
	c.mu.Lock()
	if err != nil {
		msg := client.UserMessage(err)
		c.status = StatusFailed
		c.errMsg = &msg
		outcome.Status = StatusFailed
		outcome.Message = msg
		note = toast.Error(FailureToast)
	} else {
		c.status = StatusSucceeded
		c.data = conference.Empty()
		outcome.Status = StatusSucceeded
		outcome.Message = SuccessToast
		note = toast.Success(SuccessToast)
	}
	settled = true
	observers := c.observers
	c.mu.Unlock()

	if err != nil {
		logger.Warn().Err(err).Dur("elapsed", outcome.Elapsed).Msg("conference creation failed")
	} else {
		logger.Info().Int("status", result.StatusCode).Dur("elapsed", outcome.Elapsed).Msg("conference created")
	}

	c.notifier.Notify(note)
	for _, observe := range observers {
		observe(outcome)
	}
	return outcome, nil
}
