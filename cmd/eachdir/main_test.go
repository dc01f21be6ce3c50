// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/matt-FFFFFF/eachdir/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func TestExitCode(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		want    int
		wantLog string
	}{
		{name: "success", err: nil, want: 0},
		{name: "exit coder", err: cli.Exit("failed to list directory", 1), want: 1, wantLog: "failed to list directory"},
		{name: "exit coder keeps its code", err: cli.Exit("boom", 3), want: 3, wantLog: "boom"},
		{name: "silent exit coder", err: cli.Exit("", 2), want: 2},
		{name: "plain error", err: errors.New("kaput"), want: 1, wantLog: "kaput"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer

			ctx := ctxlog.New(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

			assert.Equal(t, tc.want, exitCode(ctx, tc.err))

			if tc.wantLog == "" {
				assert.Empty(t, buf.String())
				return
			}

			assert.Contains(t, buf.String(), tc.wantLog)
			assert.Contains(t, buf.String(), "level=ERROR")
		})
	}
}
