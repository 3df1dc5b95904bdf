// Package logger configures structured logging for programs using this module and
// lets errors carry slog attributes that are expanded when the error is logged.
package logger

import (
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
)

// configMutex protects concurrent calls to ConfigureLoggingWithOptions.
// This is necessary because the function modifies global state (slog.SetDefault and log.Default).
var configMutex sync.Mutex //nolint:gochecknoglobals

// Options is used to configure logging.
type Options struct {
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// Option is a functional option for configuring logging via New.
type Option func(*Options)

// WithJSON switches the output format to JSON.
func WithJSON() Option {
	return func(o *Options) {
		o.JSON = true
	}
}

// WithMinLevel sets the minimum level that will be emitted.
func WithMinLevel(level slog.Level) Option {
	return func(o *Options) {
		o.MinLevel = level
	}
}

// WithOutput sets the destination of log output. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// New builds a logger from the given options without touching any global state.
// The returned logger understands errors created with AnnotateError.
func New(opts ...Option) *slog.Logger {
	options := Options{
		MinLevel:    slog.LevelInfo,
		LegacyLevel: slog.LevelInfo,
	}

	for _, o := range opts {
		o(&options)
	}

	return slog.New(newHandler(options))
}

// ConfigureLoggingWithOptions configures logging for the application.
// It returns the default logger.
// This function is thread-safe but modifies global state, so concurrent calls
// will be serialized.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	handler := newHandler(opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)

	// Third party packages might still use the old log package.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	return logger
}

// NewHandler wraps an existing handler so that annotated errors are expanded
// into their attributes when logged. Wrapping twice is a no-op.
func NewHandler(inner slog.Handler) slog.Handler {
	if _, ok := inner.(*slogErrorLogger); ok {
		return inner
	}

	return &slogErrorLogger{inner: inner}
}

func newHandler(opts Options) slog.Handler {
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{
		Level: opts.MinLevel,
	}

	if opts.JSON {
		return NewHandler(slog.NewJSONHandler(output, handlerOpts))
	}

	return NewHandler(slog.NewTextHandler(output, handlerOpts))
}
