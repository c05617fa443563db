// Package logger configures slog for binaries and hands out context-scoped
// loggers to library code.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"

	"github.com/amp-labs/amp-validator/contexts"
	"github.com/amp-labs/amp-validator/envutil"
	"go.uber.org/atomic"
)

// Default subsystem name, set by ConfigureLogging.
var subsystem = atomic.NewString("") //nolint:gochecknoglobals

// configMutex serializes ConfigureLoggingWithOptions, which swaps global state.
var configMutex sync.Mutex //nolint:gochecknoglobals

type contextKey string

const (
	muteKey      contextKey = "mute"
	subsystemKey contextKey = "subsystem"
	loggerKey    contextKey = "logger"
	valuesKey    contextKey = "loggerValues"
)

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// ConfigureLoggingWithOptions installs a slog default logger built from opts
// and redirects the legacy log package into it. It returns the new logger.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	handler = &slogErrorLogger{inner: handler}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// Option is a functional option for configuring logging via ConfigureLogging.
type Option func(*Options)

// WithOutput forces the log destination, ignoring LOG_OUTPUT.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// ErrInvalidLogOutput is returned when an invalid log output destination is specified.
var ErrInvalidLogOutput = errors.New("invalid log output")

// ConfigureLogging configures logging from the environment:
//   - LOG_JSON (bool, default false)
//   - LOG_LEVEL (slog level, default info)
//   - LEGACY_LOG_LEVEL (level for the log package, default info)
//   - LOG_OUTPUT (stdout or stderr, default stdout; not read when WithOutput
//     is given)
//
// Options are applied on top of the values read from the environment.
//
// Example:
//
//	log, err := logger.ConfigureLogging(ctx, "validate", logger.WithOutput(os.Stderr))
//	if err != nil {
//	    return err
//	}
//
//	ctx = logger.WithLogger(ctx, log)
func ConfigureLogging(ctx context.Context, app string, opts ...Option) (*slog.Logger, error) {
	logJSON, err := envutil.Bool(ctx, "LOG_JSON", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	minLevel, err := envutil.SlogLevel(ctx, "LOG_LEVEL", envutil.Default(slog.LevelInfo)).Value()
	if err != nil {
		return nil, err
	}

	legacyLevel, err := envutil.SlogLevel(ctx, "LEGACY_LOG_LEVEL", envutil.Default(slog.LevelInfo)).Value()
	if err != nil {
		return nil, err
	}

	options := Options{
		Subsystem:   app,
		JSON:        logJSON,
		MinLevel:    minLevel,
		LegacyLevel: legacyLevel,
	}

	for _, o := range opts {
		o(&options)
	}

	// LOG_OUTPUT is only consulted when no option chose the destination, so a
	// forced output can't be broken by a setting it overrides anyway.
	if options.Output == nil {
		options.Output, err = envutil.Map(envutil.String(ctx, "LOG_OUTPUT", envutil.Default("stdout")),
			func(outName string) (io.Writer, error) {
				switch outName {
				case "stdout":
					return os.Stdout, nil
				case "stderr":
					return os.Stderr, nil
				default:
					return nil, fmt.Errorf("%w: %q", ErrInvalidLogOutput, outName)
				}
			}).Value()
		if err != nil {
			return nil, err
		}
	}

	return ConfigureLoggingWithOptions(options), nil
}

// WithMuted suppresses all logging done through Get on the returned context.
func WithMuted(ctx context.Context, muted bool) context.Context {
	return contexts.WithValue(ctx, muteKey, muted)
}

// WithSubsystem overrides the subsystem attribute for loggers obtained from ctx.
func WithSubsystem(ctx context.Context, name string) context.Context {
	return contexts.WithValue(ctx, subsystemKey, name)
}

// GetSubsystem returns the context's subsystem, or the configured default.
func GetSubsystem(ctx context.Context) string {
	if name, ok := contexts.GetValue[contextKey, string](ctx, subsystemKey); ok {
		return name
	}

	return subsystem.Load()
}

// WithLogger makes Get return l (plus context values) instead of slog.Default.
// Tests use it to route output into the test log.
func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return contexts.WithValue(ctx, loggerKey, l)
}

// With returns a new context with the given values added.
// The values are added to the logger automatically.
func With(ctx context.Context, values ...any) context.Context {
	if len(values) == 0 && ctx != nil {
		return ctx
	}

	existing := getValues(ctx)

	vals := make([]any, 0, len(existing)+len(values))
	vals = append(vals, existing...)
	vals = append(vals, values...)

	return contexts.WithValue(ctx, valuesKey, vals)
}

func getValues(ctx context.Context) []any {
	vals, _ := contexts.GetValue[contextKey, []any](ctx, valuesKey)

	return vals
}

type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return n
}

func (n *nullHandler) WithGroup(_ string) slog.Handler {
	return n
}

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns a logger for the first non-nil context (or a background one),
// carrying the subsystem and any values added with With.
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := contexts.EnsureContext(ctx...)

	if contexts.GetValueOr(realCtx, muteKey, false) {
		return nullLogger
	}

	logger, ok := contexts.GetValue[contextKey, *slog.Logger](realCtx, loggerKey)
	if !ok || logger == nil {
		logger = slog.Default()
	}

	if name := GetSubsystem(realCtx); name != "" {
		logger = logger.With("subsystem", name)
	}

	if vals := getValues(realCtx); len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}
