package mockapi

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-confform/pkg/contract"
)

// GuardFunc may reject a request before validation. Returning a StatusError
// selects the response status.
type GuardFunc func(r *http.Request) error

// Failure forces every request to be rejected with Status. An empty Reason
// omits the "error" field so clients fall back to their generic message.
type Failure struct {
	Status int
	Reason string
}

type Options struct {
	RoutePath    string
	MaxBodyBytes int64
	Latency      time.Duration
	Guard        GuardFunc
	Failure      *Failure
	Contract     *contract.Contract
	NewID        func() string
	Logger       zerolog.Logger
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		RoutePath:    contract.Path,
		MaxBodyBytes: 64 << 10,
		NewID:        func() string { return uuid.NewString() },
		Logger:       zerolog.Nop(),
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.RoutePath == "" {
		opts.RoutePath = contract.Path
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 64 << 10
	}
	if opts.Latency < 0 {
		opts.Latency = 0
	}
	if opts.NewID == nil {
		opts.NewID = func() string { return uuid.NewString() }
	}
	if opts.Failure != nil {
		failure := *opts.Failure
		if failure.Status < 400 {
			failure.Status = http.StatusInternalServerError
		}
		opts.Failure = &failure
	}
	return opts
}

func WithRoutePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.RoutePath = path
	}
}

func WithMaxBodyBytes(limit int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxBodyBytes = limit
	}
}

// WithLatency delays every response, useful to observe the Submitting state.
func WithLatency(d time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Latency = d
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithFailure(status int, reason string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Failure = &Failure{Status: status, Reason: reason}
	}
}

// WithContract supplies a pre-loaded contract; otherwise the embedded one is
// loaded when the handler is built.
func WithContract(c *contract.Contract) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Contract = c
	}
}

func WithIDGenerator(fn func() string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.NewID = fn
	}
}

func WithLogger(logger zerolog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}
