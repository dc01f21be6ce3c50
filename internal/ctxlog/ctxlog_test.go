// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name          string
		ctx           context.Context
		expectDefault bool
	}{
		{
			name:          "context with logger",
			ctx:           New(context.Background(), slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))),
			expectDefault: false,
		},
		{
			name:          "context without logger",
			ctx:           context.Background(),
			expectDefault: true,
		},
		{
			name:          "nil logger stores default",
			ctx:           New(context.Background(), nil),
			expectDefault: true,
		},
		{
			name:          "wrong type value",
			ctx:           context.WithValue(context.Background(), loggerKey{}, "not a logger"),
			expectDefault: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := Logger(tt.ctx)
			assert.NotNil(t, logger)
			assert.Equal(t, tt.expectDefault, logger == DefaultLogger)
		})
	}
}

func TestLoggingFunctions(t *testing.T) {
	var buf bytes.Buffer

	ctx := New(context.Background(), NewLogger(&buf, slog.LevelDebug))

	tests := []struct {
		name    string
		logFunc func(context.Context, string, ...any)
		level   string
	}{
		{name: "debug", logFunc: Debug, level: "DEBUG:"},
		{name: "info", logFunc: Info, level: "INFO:"},
		{name: "warn", logFunc: Warn, level: "WARN:"},
		{name: "error", logFunc: Error, level: "ERROR:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.logFunc(ctx, "message "+tt.name, "dir", "foo")
			assert.Contains(t, buf.String(), tt.level)
			assert.Contains(t, buf.String(), "message "+tt.name)
			assert.Contains(t, buf.String(), "foo")
		})
	}
}

func TestLogLevelFromEnv(t *testing.T) {
	tests := []struct {
		envValue string
		want     slog.Level
	}{
		{envValue: "DEBUG", want: slog.LevelDebug},
		{envValue: "info", want: slog.LevelInfo},
		{envValue: "WARN", want: slog.LevelWarn},
		{envValue: "ERROR", want: slog.LevelError},
		{envValue: "nonsense", want: slog.LevelWarn},
		{envValue: "", want: slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run("value "+tt.envValue, func(t *testing.T) {
			t.Setenv(LogLevelEnvVar, tt.envValue)
			assert.Equal(t, tt.want, logLevelFromEnv())
		})
	}
}

func TestLevelForVerbosity(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, LevelForVerbosity(0))
	assert.Equal(t, slog.LevelDebug, LevelForVerbosity(1))
	assert.Equal(t, slog.LevelDebug, LevelForVerbosity(2))
}

func TestWithVerbosity(t *testing.T) {
	newCtx := func(buf *bytes.Buffer, level slog.Level) context.Context {
		return New(context.Background(), slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level})))
	}

	t.Run("zero keeps an explicit error level", func(t *testing.T) {
		var buf bytes.Buffer

		ctx := WithVerbosity(newCtx(&buf, slog.LevelError), 0)
		Warn(ctx, "hidden warning")
		Error(ctx, "shown error")
		assert.NotContains(t, buf.String(), "hidden warning")
		assert.Contains(t, buf.String(), "shown error")
	})

	t.Run("zero keeps an explicit debug level", func(t *testing.T) {
		var buf bytes.Buffer

		ctx := WithVerbosity(newCtx(&buf, slog.LevelDebug), 0)
		Debug(ctx, "shown debug")
		assert.Contains(t, buf.String(), "shown debug")
	})

	t.Run("one lowers to debug", func(t *testing.T) {
		var buf bytes.Buffer

		ctx := WithVerbosity(newCtx(&buf, slog.LevelError), 1)
		Logger(ctx).With("dir", "a").Debug("shown debug")
		assert.Contains(t, buf.String(), "shown debug")
		assert.Contains(t, buf.String(), "dir=a")
	})

	t.Run("already verbose logger is reused", func(t *testing.T) {
		var buf bytes.Buffer

		ctx := newCtx(&buf, slog.LevelDebug)
		assert.Same(t, Logger(ctx), Logger(WithVerbosity(ctx, 2)))
	})

	t.Run("shared level is untouched", func(t *testing.T) {
		orig := LevelVar.Level()
		defer LevelVar.Set(orig)

		LevelVar.Set(slog.LevelError)
		ctx := WithVerbosity(New(context.Background(), nil), 1)
		assert.True(t, Logger(ctx).Enabled(ctx, slog.LevelDebug))
		assert.Equal(t, slog.LevelError, LevelVar.Level())
		assert.False(t, DefaultLogger.Enabled(ctx, slog.LevelDebug))
	})
}

func TestJSONLogger(t *testing.T) {
	orig := LevelVar.Level()
	defer LevelVar.Set(orig)

	LevelVar.Set(slog.LevelDebug)
	assert.True(t, JSONLogger.Enabled(context.Background(), slog.LevelDebug))
}

func TestFromEnv(t *testing.T) {
	t.Setenv(LogFormatEnvVar, "")
	assert.Same(t, DefaultLogger, FromEnv())

	t.Setenv(LogFormatEnvVar, "JSON")
	assert.Same(t, JSONLogger, FromEnv())

	t.Setenv(LogFormatEnvVar, "pretty")
	assert.Same(t, DefaultLogger, FromEnv())
}
