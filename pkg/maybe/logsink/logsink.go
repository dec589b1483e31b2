package logsink

import (
	"context"
	"log/slog"
)

const defaultMessage = "maybe computation failed"

type sink struct {
	logger  *slog.Logger
	ctx     context.Context
	level   slog.Level
	message string
	attrs   []any
}

// Option is a functional option for configuring the sink.
type Option func(*sink)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *sink) {
		s.logger = logger
	}
}

// WithLevel sets the level failures are logged at. Defaults to error.
func WithLevel(level slog.Level) Option {
	return func(s *sink) {
		s.level = level
	}
}

// WithMessage replaces the log message.
func WithMessage(message string) Option {
	return func(s *sink) {
		s.message = message
	}
}

// WithContext sets the context handed to the slog handler.
func WithContext(ctx context.Context) Option {
	return func(s *sink) {
		s.ctx = ctx
	}
}

// WithAttrs adds key/value pairs to every record.
func WithAttrs(args ...any) Option {
	return func(s *sink) {
		s.attrs = append(s.attrs, args...)
	}
}

// New returns a callback for LogErrors. Root causes are logged under "error",
// plain messages under "reason", anything else under "payload".
func New(opts ...Option) func(any) {
	s := &sink{
		logger:  slog.Default(),
		ctx:     context.Background(),
		level:   slog.LevelError,
		message: defaultMessage,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s.log
}

func (s *sink) log(payload any) {
	args := make([]any, 0, len(s.attrs)+2)
	args = append(args, s.attrs...)

	switch p := payload.(type) {
	case error:
		args = append(args, "error", p)
	case string:
		args = append(args, "reason", p)
	default:
		args = append(args, "payload", p)
	}

	s.logger.Log(s.ctx, s.level, s.message, args...)
}
