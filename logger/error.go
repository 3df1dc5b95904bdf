package logger

import (
	"context"
	"log/slog"
	"strconv"
	"time"
)

// AnnotateError wraps an error with structured logging attributes (slog key-value pairs).
// When the returned error is logged through a handler built by NewHandler,
// the attributes are automatically extracted and included in the log output.
//
// Annotations survive further wrapping with fmt.Errorf("%w") and remain
// compatible with errors.Is and errors.As.
//
// Example:
//
//	if selector == nil {
//	    return logger.AnnotateError(fmt.Errorf("%w: selector is nil", errors.ErrInvalidArgument),
//	        "argument", "selector")
//	}
//
// Returns nil if err is nil.
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	r := slog.NewRecord(time.Now(), slog.LevelDebug, "", 0)
	r.Add(args...)

	var errAttrs []slog.Attr

	r.Attrs(func(attr slog.Attr) bool {
		errAttrs = append(errAttrs, attr)

		return true
	})

	return &slogError{
		err:   err,
		attrs: errAttrs,
	}
}

// Attrs returns every attribute attached to err or any error it wraps, outermost first.
// When the chain reaches an error joining several others (errors.Join, or fmt.Errorf
// with more than one %w), the annotations of each joined error are returned as a
// group keyed by its position, so repeated keys such as "index" stay distinct.
func Attrs(err error) []slog.Attr {
	var attrs []slog.Attr

	for err != nil {
		if se, ok := err.(*slogError); ok { //nolint:errorlint
			attrs = append(attrs, se.attrs...)
			err = se.err

			continue
		}

		switch wrapped := err.(type) { //nolint:errorlint
		case interface{ Unwrap() []error }:
			for i, child := range wrapped.Unwrap() {
				if childAttrs := Attrs(child); len(childAttrs) > 0 {
					attrs = append(attrs, slog.Attr{
						Key:   strconv.Itoa(i),
						Value: slog.GroupValue(childAttrs...),
					})
				}
			}

			return attrs
		case interface{ Unwrap() error }:
			err = wrapped.Unwrap()
		default:
			return attrs
		}
	}

	return attrs
}

// slogError wraps an error with structured logging attributes.
type slogError struct {
	err   error
	attrs []slog.Attr
}

func (s *slogError) Error() string {
	return s.err.Error()
}

func (s *slogError) Unwrap() error {
	return s.err
}

var _ error = (*slogError)(nil)

// slogErrorLogger is a slog.Handler decorator that extracts structured attributes
// from annotated errors and includes them in the log output.
type slogErrorLogger struct {
	inner slog.Handler
}

var _ slog.Handler = (*slogErrorLogger)(nil)

func (s *slogErrorLogger) Enabled(ctx context.Context, level slog.Level) bool {
	return s.inner.Enabled(ctx, level)
}

// Handle rewrites the record only when one of its attributes is an annotated error.
// The error attribute keeps its key and message; the annotations follow the
// record's own attributes.
func (s *slogErrorLogger) Handle(ctx context.Context, record slog.Record) error {
	var (
		baseAttrs []slog.Attr
		errAttrs  []slog.Attr
	)

	record.Attrs(func(attr slog.Attr) bool {
		err, ok := attr.Value.Any().(error)
		if !ok {
			baseAttrs = append(baseAttrs, attr)

			return true
		}

		extra := Attrs(err)
		if len(extra) == 0 {
			baseAttrs = append(baseAttrs, attr)

			return true
		}

		baseAttrs = append(baseAttrs, slog.String(attr.Key, err.Error()))
		errAttrs = append(errAttrs, extra...)

		return true
	})

	if len(errAttrs) == 0 {
		return s.inner.Handle(ctx, record)
	}

	r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	r.AddAttrs(baseAttrs...)
	r.AddAttrs(errAttrs...)

	return s.inner.Handle(ctx, r)
}

func (s *slogErrorLogger) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithAttrs(attrs)}
}

func (s *slogErrorLogger) WithGroup(name string) slog.Handler {
	return &slogErrorLogger{inner: s.inner.WithGroup(name)}
}
