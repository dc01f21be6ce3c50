// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the eachdir command-line application.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/matt-FFFFFF/eachdir/cmd/eachdir/root"
	"github.com/matt-FFFFFF/eachdir/internal/ctxlog"
	"github.com/matt-FFFFFF/eachdir/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.FromEnv())

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	rootCmd := root.New()
	err := rootCmd.Run(ctx, root.SplitArgs(rootCmd, os.Args))

	signalbroker.Stop(sigCh)
	cancel()

	os.Exit(exitCode(ctx, err))
}

func exitCode(ctx context.Context, err error) int {
	if err == nil {
		return 0
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			ctxlog.Error(ctx, msg)
		}

		return exitErr.ExitCode()
	}

	ctxlog.Error(ctx, "command failed", "error", err)

	return 1
}
