package mockapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-confform/pkg/conference"
	"github.com/goliatone/go-confform/pkg/contract"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Record is the body of a successful creation.
type Record struct {
	ID string `json:"id"`
	conference.FormData
	CreatedAt time.Time `json:"createdAt"`
}

type errorResponse struct {
	Error string `json:"error,omitempty"`
}

func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds the handler from a pre-built Options value. When
// no contract is supplied the embedded one is loaded once here; a load failure
// makes every request answer 500.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })

	spec := opts.Contract
	var loadErr error
	if spec == nil {
		spec, loadErr = contract.Load(context.Background())
		if loadErr != nil {
			opts.Logger.Error().Err(loadErr).Msg("mockapi: contract unavailable")
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			writeError(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
			return
		}
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeGuardError(w, err)
				return
			}
		}

		if opts.Latency > 0 {
			if !wait(r.Context(), opts.Latency) {
				return
			}
		}

		if opts.Failure != nil {
			opts.Logger.Debug().
				Int("status", opts.Failure.Status).
				Msg("mockapi: forced failure")
			writeError(w, opts.Failure.Status, opts.Failure.Reason)
			return
		}

		if loadErr != nil {
			writeError(w, http.StatusInternalServerError, "contract unavailable")
			return
		}

		if !isJSON(r.Header.Get("Content-Type")) {
			writeError(w, http.StatusUnsupportedMediaType, "content type must be application/json")
			return
		}

		payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, opts.MaxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
				return
			}
			writeError(w, http.StatusBadRequest, "request body could not be read")
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(payload))

		if err := spec.ValidateRequest(r.Context(), r); err != nil {
			opts.Logger.Debug().Err(err).Msg("mockapi: request rejected")
			writeError(w, http.StatusBadRequest, contract.Message(err))
			return
		}

		var data conference.FormData
		if err := json.Unmarshal(payload, &data); err != nil {
			writeError(w, http.StatusBadRequest, "request body is not valid JSON")
			return
		}

		record := Record{
			ID:        opts.NewID(),
			FormData:  data,
			CreatedAt: time.Now().UTC(),
		}
		opts.Logger.Info().
			Str("id", record.ID).
			Str("name", record.Name).
			Msg("mockapi: conference accepted")

		writeJSON(w, http.StatusCreated, record)
	})
}

func wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func isJSON(contentType string) bool {
	if strings.TrimSpace(contentType) == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json"
}

func writeGuardError(w http.ResponseWriter, err error) {
	if w == nil {
		return
	}
	if err == nil {
		writeError(w, http.StatusForbidden, http.StatusText(http.StatusForbidden))
		return
	}
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	writeError(w, code, http.StatusText(code))
}

func writeError(w http.ResponseWriter, code int, reason string) {
	writeJSON(w, code, errorResponse{Error: reason})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(true)
	_ = enc.Encode(payload)
}
