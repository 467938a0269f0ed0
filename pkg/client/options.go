package client

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultPath is the conference-creation resource.
	DefaultPath = "/api/conferences"
	// DefaultTimeout bounds one round trip when no client timeout is set.
	DefaultTimeout = 15 * time.Second
	// DefaultMaxBodyBytes caps how much of a response body is read.
	DefaultMaxBodyBytes int64 = 1 << 20
)

// RequestValidator checks an outbound request before it is sent. It is
// satisfied by *contract.Contract.
type RequestValidator interface {
	ValidateRequest(ctx context.Context, req *http.Request) error
}

// Option configures a Client.
type Option func(*config)

type config struct {
	httpClient   *http.Client
	path         string
	timeout      time.Duration
	headers      http.Header
	maxBodyBytes int64
	validator    RequestValidator
	logger       zerolog.Logger
}

func defaultConfig() config {
	return config{
		path:         DefaultPath,
		timeout:      DefaultTimeout,
		headers:      make(http.Header),
		maxBodyBytes: DefaultMaxBodyBytes,
		logger:       zerolog.Nop(),
	}
}

// WithHTTPClient supplies the underlying HTTP client. It is cloned so the
// timeout default does not leak into the caller's instance.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = client
	}
}

// WithPath overrides the creation resource path.
func WithPath(path string) Option {
	return func(cfg *config) {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			return
		}
		if !strings.HasPrefix(trimmed, "/") {
			trimmed = "/" + trimmed
		}
		cfg.path = trimmed
	}
}

// WithTimeout sets the round-trip timeout applied when the HTTP client does
// not carry one. Zero disables the default.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) {
		if timeout >= 0 {
			cfg.timeout = timeout
		}
	}
}

// WithHeader adds a static request header (for example an API key).
func WithHeader(name, value string) Option {
	return func(cfg *config) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		cfg.headers.Add(name, value)
	}
}

// WithMaxBodyBytes caps the response body size that is read and decoded.
func WithMaxBodyBytes(limit int64) Option {
	return func(cfg *config) {
		if limit > 0 {
			cfg.maxBodyBytes = limit
		}
	}
}

// WithContract validates every outbound request before sending it.
func WithContract(validator RequestValidator) Option {
	return func(cfg *config) {
		cfg.validator = validator
	}
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}
