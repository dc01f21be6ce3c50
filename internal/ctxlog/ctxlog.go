// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// LogLevelEnvVar sets the starting log level. It accepts DEBUG, INFO, WARN or ERROR.
	LogLevelEnvVar = "EACHDIR_LOG_LEVEL"
	// LogFormatEnvVar selects JSON records when set to "json".
	LogFormatEnvVar = "EACHDIR_LOG_FORMAT"
)

type loggerKey struct{}

// LevelVar is the starting level for DefaultLogger and JSONLogger, read from EACHDIR_LOG_LEVEL.
var LevelVar = &slog.LevelVar{}

// DefaultLogger is the pretty stderr logger used when the context carries none.
var DefaultLogger = NewLogger(os.Stderr, LevelVar)

// JSONLogger writes machine readable records to stderr.
var JSONLogger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
	Level: LevelVar,
}))

func init() {
	LevelVar.Set(logLevelFromEnv())
}

// NewLogger returns a pretty logger writing to w at the given level.
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(NewPrettyHandler(&slog.HandlerOptions{
		Level: level,
	},
		WithAutoColour(),
		WithDestinationWriter(w),
	))
}

// FromEnv returns JSONLogger when EACHDIR_LOG_FORMAT is "json" and DefaultLogger otherwise.
func FromEnv() *slog.Logger {
	if strings.EqualFold(os.Getenv(LogFormatEnvVar), "json") {
		return JSONLogger
	}

	return DefaultLogger
}

// New returns a copy of ctx carrying logger.
// A nil logger stores DefaultLogger.
func New(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		logger = DefaultLogger
	}

	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger returns the logger from the context, or the default logger if not found.
func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || logger == nil {
		return DefaultLogger
	}

	return logger
}

// Info logs an info message with the given context.
func Info(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Info(msg, args...)
}

// Debug logs a debug message with the given context.
func Debug(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Debug(msg, args...)
}

// Warn logs a warning message with the given context.
func Warn(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Warn(msg, args...)
}

// Error logs an error message with the given context.
func Error(ctx context.Context, msg string, args ...any) {
	Logger(ctx).Error(msg, args...)
}

// LevelForVerbosity maps the --debug count onto a slog level.
// Zero keeps warnings and errors only; any higher count enables debug records.
func LevelForVerbosity(verbosity int) slog.Level {
	if verbosity > 0 {
		return slog.LevelDebug
	}

	return slog.LevelWarn
}

// WithVerbosity returns a copy of ctx whose logger emits records at LevelForVerbosity(verbosity).
// A verbosity of zero or less returns ctx unchanged, so an explicit EACHDIR_LOG_LEVEL is kept.
// The level is only ever lowered.
func WithVerbosity(ctx context.Context, verbosity int) context.Context {
	if verbosity <= 0 {
		return ctx
	}

	logger := Logger(ctx)
	level := LevelForVerbosity(verbosity)

	if logger.Enabled(ctx, level) {
		return ctx
	}

	return New(ctx, slog.New(&levelHandler{level: level, next: logger.Handler()}))
}

// levelHandler replaces the minimum level of the handler it wraps.
type levelHandler struct {
	level slog.Leveler
	next  slog.Handler
}

func (h *levelHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *levelHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.next.Handle(ctx, r)
}

func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelHandler{level: h.level, next: h.next.WithAttrs(attrs)}
}

func (h *levelHandler) WithGroup(name string) slog.Handler {
	return &levelHandler{level: h.level, next: h.next.WithGroup(name)}
}

func logLevelFromEnv() slog.Level {
	switch strings.ToUpper(os.Getenv(LogLevelEnvVar)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
