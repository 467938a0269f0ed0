package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-confform/pkg/conference"
)

// Result describes a successful creation round trip. The body is kept raw;
// callers do not depend on its shape.
type Result struct {
	StatusCode int
	Body       json.RawMessage
	// Truncated reports a success body larger than the read limit. Body is
	// nil in that case.
	Truncated bool
}

// Client posts FormData records to the conference-creation endpoint. It
// performs exactly one request per call and never retries.
type Client struct {
	endpoint     string
	http         *http.Client
	headers      http.Header
	maxBodyBytes int64
	validator    RequestValidator
	logger       zerolog.Logger
}

// New constructs a Client for baseURL (scheme and host, optionally a path
// prefix). An empty baseURL produces relative requests against path, which
// is only useful with a custom transport.
func New(baseURL string, options ...Option) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	endpoint, err := joinEndpoint(baseURL, cfg.path)
	if err != nil {
		return nil, err
	}

	var httpClient *http.Client
	if cfg.httpClient != nil {
		clone := *cfg.httpClient
		httpClient = &clone
	} else {
		httpClient = &http.Client{}
	}
	if httpClient.Timeout == 0 && cfg.timeout > 0 {
		httpClient.Timeout = cfg.timeout
	}

	return &Client{
		endpoint:     endpoint,
		http:         httpClient,
		headers:      cfg.headers.Clone(),
		maxBodyBytes: cfg.maxBodyBytes,
		validator:    cfg.validator,
		logger:       cfg.logger,
	}, nil
}

// Endpoint returns the absolute URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// CreateConference sends data as a single JSON record.
func (c *Client) CreateConference(ctx context.Context, data conference.FormData) (Result, error) {
	if c == nil || c.http == nil {
		return Result{}, errors.New("client: not configured")
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return Result{}, fmt.Errorf("client: encode form data: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("client: build request: %w", err)
	}
	for name, values := range c.headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.validator != nil {
		if err := c.validator.ValidateRequest(ctx, req); err != nil {
			return Result{}, fmt.Errorf("client: request violates contract: %w", err)
		}
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("url", c.endpoint).Msg("create conference: transport failure")
		return Result{}, &TransportError{Method: http.MethodPost, URL: c.endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return Result{}, &TransportError{Method: http.MethodPost, URL: c.endpoint, Err: fmt.Errorf("read body: %w", err)}
	}
	truncated := int64(len(raw)) > c.maxBodyBytes
	if truncated {
		raw = raw[:c.maxBodyBytes]
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Bool("truncated", truncated).
		Str("url", c.endpoint).
		Msg("create conference: response received")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, &RejectionError{
			StatusCode: resp.StatusCode,
			Reason:     errorReason(raw),
			Body:       raw,
		}
	}

	// Accepted stays accepted when the body runs past the cap.
	if truncated {
		return Result{StatusCode: resp.StatusCode, Truncated: true}, nil
	}

	if !json.Valid(raw) {
		return Result{}, &ResponseError{StatusCode: resp.StatusCode, Err: errInvalidJSON}
	}

	return Result{StatusCode: resp.StatusCode, Body: json.RawMessage(raw)}, nil
}

// errorReason extracts a string "error" field from a JSON object body.
func errorReason(raw []byte) string {
	if len(bytes.TrimSpace(raw)) == 0 {
		return ""
	}
	var payload struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload.Error) == 0 {
		return ""
	}
	var reason string
	if err := json.Unmarshal(payload.Error, &reason); err != nil {
		return ""
	}
	return strings.TrimSpace(reason)
}

func joinEndpoint(baseURL, path string) (string, error) {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		return path, nil
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("client: parse base url %q: %w", base, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("client: base url %q must use http or https", base)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("client: base url %q has no host", base)
	}
	parsed.Path = strings.TrimRight(parsed.Path, "/") + path
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed.String(), nil
}
