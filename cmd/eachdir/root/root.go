// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package root contains the eachdir command line interface.
package root

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/matt-FFFFFF/eachdir"
	"github.com/matt-FFFFFF/eachdir/internal/ctxlog"
	"github.com/matt-FFFFFF/eachdir/internal/lister"
	"github.com/matt-FFFFFF/eachdir/internal/output"
	"github.com/matt-FFFFFF/eachdir/internal/pool"
	"github.com/matt-FFFFFF/eachdir/internal/runner"
	"github.com/matt-FFFFFF/eachdir/internal/template"
	"github.com/urfave/cli/v3"
)

const (
	directoryFlag      = "directory"
	invertFlag         = "invert"
	debugFlag          = "debug"
	threadsFlag        = "threads"
	ignoreWarningsFlag = "ignore-warnings"
	modeFlag           = "mode"
	configFlag         = "config"
	completionFlag     = "completion"
	versionFlag        = "version"

	envPrefix = "EACHDIR_"
)

const description = `eachdir runs COMMAND once for every entry directly inside a directory,
in parallel, and prints the path of each entry for which the command succeeded.

In placeholder mode (the default) every {} in ARGS is replaced by the entry path
and the command runs in the current directory. In workdir mode ARGS are left alone
and the command runs inside the entry.

Everything from COMMAND onwards is passed to the command, so its own flags need no quoting:

  eachdir -d ~/src git -C {} diff --quiet
  eachdir -i -m workdir test -f go.mod`

// New returns the root command.
func New() *cli.Command {
	return &cli.Command{
		Name:        "eachdir",
		Usage:       "run a command for every entry in a directory and print those that succeed",
		UsageText:   "eachdir [options] COMMAND [ARGS...]",
		Description: description,
		Version:     fmt.Sprintf("%s (commit: %s)", eachdir.Version, eachdir.Commit),
		Copyright:   "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
		Writer:                 os.Stdout,
		ErrWriter:              os.Stderr,
		HideVersion:            true,
		HideHelpCommand:        true,
		UseShortOptionHandling: true,
		Flags:                  flags(),
		Action:                 actionFunc,
		OnUsageError: func(_ context.Context, _ *cli.Command, err error, _ bool) error {
			return cli.Exit(fmt.Sprintf("incorrect usage: %s", err.Error()), 1)
		},
		// main reports the error and picks the exit code.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      directoryFlag,
			Aliases:   []string{"d"},
			Usage:     "run the command for each entry in `DIR`",
			Value:     ".",
			TakesFile: true,
			Sources:   cli.EnvVars(envPrefix + "DIRECTORY"),
		},
		&cli.BoolFlag{
			Name:    invertFlag,
			Aliases: []string{"i"},
			Usage:   "print the entries for which the command failed instead",
			Sources: cli.EnvVars(envPrefix + "INVERT"),
		},
		&cli.BoolFlag{
			Name:    debugFlag,
			Usage:   "log each command before it runs, repeat to also show its stdout",
			Sources: cli.EnvVars(envPrefix + "DEBUG"),
		},
		&cli.IntFlag{
			Name:    threadsFlag,
			Aliases: []string{"t"},
			Usage:   "number of commands to run at once, 0 uses one per CPU",
			Value:   0,
			Sources: cli.EnvVars(envPrefix + "THREADS"),
			Validator: func(n int) error {
				if n < 0 {
					return fmt.Errorf("threads must not be negative, got %d", n)
				}

				return nil
			},
		},
		&cli.BoolFlag{
			Name:    ignoreWarningsFlag,
			Aliases: []string{"e", "s", "silent"},
			Usage:   "discard the stderr of the commands",
			Sources: cli.EnvVars(envPrefix+"IGNORE_WARNINGS", envPrefix+"SILENT"),
		},
		&cli.StringFlag{
			Name:    modeFlag,
			Aliases: []string{"m"},
			Usage:   "how the entry reaches the command: placeholder or workdir",
			Value:   template.ModePlaceholder.String(),
			Sources: cli.EnvVars(envPrefix + "MODE"),
			Validator: func(s string) error {
				_, err := template.ParseMode(s)
				return err
			},
		},
		&cli.StringFlag{
			Name:      configFlag,
			Aliases:   []string{"c"},
			Usage:     "read defaults from the YAML `FILE`, local path or go-getter URL",
			TakesFile: true,
			Sources:   cli.EnvVars(envPrefix + "CONFIG"),
		},
		&cli.StringFlag{
			Name:  completionFlag,
			Usage: "print the completion script for `SHELL` (bash, zsh, fish or pwsh) and exit",
		},
		&cli.BoolFlag{
			Name:    versionFlag,
			Aliases: []string{"v"},
			Usage:   "print the version",
		},
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool(versionFlag) {
		_, err := fmt.Fprintf(cmd.Root().Writer, "%s version %s\n", cmd.Name, cmd.Version)
		return err
	}

	if shell := cmd.String(completionFlag); shell != "" {
		script, err := Completion(cmd, shell)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		_, err = io.WriteString(cmd.Root().Writer, script)

		return err
	}

	settings, err := NewSettings(ctx, cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return Execute(ctx, settings, streamsFor(cmd))
}

// Execute lists the entries of the configured directory and runs the template for each one.
// It returns a cli.ExitCoder when the listing fails, when any command could not be started
// or when the run was cancelled before every entry was started.
func Execute(ctx context.Context, s *Settings, streams runner.Streams) error {
	ctx = ctxlog.WithVerbosity(ctx, s.Verbosity)
	logger := ctxlog.Logger(ctx)

	entries, err := lister.List(ctx, lister.FsFactory(), s.Directory)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	workers := pool.Size(s.Threads)
	if s.Verbosity > 0 {
		logger.Debug(fmt.Sprintf("using %d workers", workers))
	}

	r := runner.New(s.Template, runner.Options{
		Invert:    s.Invert,
		Verbosity: s.Verbosity,
		Silent:    s.Silent,
		Mode:      s.Mode,
	}, streams)

	results := runner.Results(pool.Run(ctx, workers, entries, r.Run))

	logger.Info("run complete",
		"entries", len(entries),
		"matched", results.Matched(),
		"succeeded", results.Count(runner.StatusSuccess),
		"failed", results.Count(runner.StatusFailure),
		"errors", results.Count(runner.StatusError),
	)

	if err := results.Errors(); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if n := results.Count(runner.StatusSkipped); n > 0 {
		return cli.Exit(fmt.Sprintf("run cancelled, %d of %d entries not started", n, len(entries)), 1)
	}

	return nil
}

// streamsFor sends matches to the command's writer. Child processes need real
// files, so they only inherit the writers when those are files.
func streamsFor(cmd *cli.Command) runner.Streams {
	root := cmd.Root()

	s := runner.Streams{
		Matches: output.NewLineWriter(root.Writer),
	}

	if f, ok := root.Writer.(*os.File); ok {
		s.Stdout = f
	}

	if f, ok := root.ErrWriter.(*os.File); ok {
		s.Stderr = f
	}

	return s
}
