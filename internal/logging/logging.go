// Package logging builds the zerolog loggers shared by the server, the
// terminal session and the submission controller.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	Component     string
}

// New creates a configured logger. An empty level defaults to info.
func New(opts Options) (zerolog.Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if raw := strings.TrimSpace(opts.Level); raw != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(raw))
		if err != nil {
			return zerolog.Nop(), err
		}
		level = parsed
	}

	var output io.Writer = writer
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp()
	if component := strings.TrimSpace(opts.Component); component != "" {
		ctx = ctx.Str("component", component)
	}
	return ctx.Logger(), nil
}

// WithFields returns a derived logger that always writes the supplied fields.
func WithFields(base zerolog.Logger, fields map[string]any) zerolog.Logger {
	if len(fields) == 0 {
		return base
	}
	builder := base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}
	return builder.Logger()
}

// Nop returns a disabled logger.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
