// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/matt-FFFFFF/eachdir/internal/commandinpath"
	"github.com/matt-FFFFFF/eachdir/internal/ctxlog"
	"github.com/matt-FFFFFF/eachdir/internal/output"
	"github.com/matt-FFFFFF/eachdir/internal/template"
)

var (
	// ErrCouldNotStartProcess is returned when the process could not be started.
	ErrCouldNotStartProcess = errors.New("could not start process")
	// ErrSkipped is returned for units that were not started because the run was cancelled.
	ErrSkipped = errors.New("not started, run cancelled")
	// ErrWriteMatch is returned when a matching directory could not be printed.
	ErrWriteMatch = errors.New("failed to write match")
	// ErrNullDevice is returned when the null device cannot be opened.
	ErrNullDevice = errors.New("failed to open null device")
)

// Options are the per-run settings shared by every unit.
type Options struct {
	Invert    bool          // Report failures instead of successes.
	Verbosity int           // 1 logs each exec, 2 also shows the child's stdout.
	Silent    bool          // Discard the child's stderr.
	Mode      template.Mode // How the directory reaches the command.
}

// Streams are the destinations a Runner writes to.
type Streams struct {
	Stdout  *os.File           // Child stdout when Verbosity >= 2.
	Stderr  *os.File           // Child stderr unless Silent.
	Matches *output.LineWriter // Receives one line per matching directory.
}

// DefaultStreams wires the runner to the process's own stdout and stderr.
func DefaultStreams() Streams {
	return Streams{
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Matches: output.NewLineWriter(os.Stdout),
	}
}

// Runner executes the template for one directory at a time.
// A single Runner is shared by all workers; it holds no mutable state.
type Runner struct {
	tmpl    *template.Template
	opts    Options
	streams Streams
}

// New creates a Runner. Zero-valued streams fall back to DefaultStreams.
func New(tmpl *template.Template, opts Options, streams Streams) *Runner {
	def := DefaultStreams()

	if streams.Stdout == nil {
		streams.Stdout = def.Stdout
	}

	if streams.Stderr == nil {
		streams.Stderr = def.Stderr
	}

	if streams.Matches == nil {
		streams.Matches = def.Matches
	}

	return &Runner{
		tmpl:    tmpl,
		opts:    opts,
		streams: streams,
	}
}

// Run executes the command for dir and prints dir when the outcome matches the polarity.
//
// There is no timeout and a started child is never killed. ctx only supplies the
// logger and lets a cancelled run skip units that have not started.
func (r *Runner) Run(ctx context.Context, dir string) *Result {
	logger := ctxlog.Logger(ctx).With("dir", dir)

	res := &Result{
		Dir:      dir,
		ExitCode: -1,
	}

	if err := ctx.Err(); err != nil {
		logger.Debug("skipping, run cancelled")

		res.Status = StatusSkipped
		res.Error = fmt.Errorf("%w: %w", ErrSkipped, err)

		return res
	}

	inv := r.tmpl.Resolve(dir, r.opts.Mode)

	path, err := commandinpath.Find(inv.Exec)
	if err != nil {
		return r.startFailed(ctx, res, err)
	}

	if r.opts.Verbosity > 0 {
		logger.Debug("exec", "path", path, "args", inv.Args, "cwd", inv.Dir)
	}

	null, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return r.startFailed(ctx, res, fmt.Errorf("%w: %w", ErrNullDevice, err))
	}

	defer null.Close() //nolint:errcheck

	stdout := null
	if r.opts.Verbosity > 1 {
		stdout = r.streams.Stdout
	}

	stderr := r.streams.Stderr
	if r.opts.Silent {
		stderr = null
	}

	ps, err := os.StartProcess(path, slices.Concat([]string{inv.Exec}, inv.Args), &os.ProcAttr{
		Dir:   inv.Dir,
		Env:   os.Environ(),
		Files: []*os.File{null, stdout, stderr},
	})
	if err != nil {
		return r.startFailed(ctx, res, err)
	}

	logger.Debug("process started", "pid", ps.Pid)

	state, err := ps.Wait()
	if err != nil {
		return r.startFailed(ctx, res, err)
	}

	res.ExitCode = state.ExitCode()

	// Success requires a normal exit with status zero; a signal is a failure.
	success := state.Success()
	if success {
		res.Status = StatusSuccess
	} else {
		res.Status = StatusFailure
	}

	res.Matched = success != r.opts.Invert

	logger.Debug("process finished", "exitCode", res.ExitCode, "status", res.Status.String(), "matched", res.Matched)

	if res.Matched {
		if err := r.streams.Matches.WriteLine(dir); err != nil {
			logger.Error("failed to write match", "error", err)
			res.Error = fmt.Errorf("%w: %w", ErrWriteMatch, err)
		}
	}

	return res
}

func (r *Runner) startFailed(ctx context.Context, res *Result, err error) *Result {
	res.Status = StatusError
	res.Error = fmt.Errorf("%w: %w", ErrCouldNotStartProcess, err)

	ctxlog.Logger(ctx).Error("could not start process",
		"dir", res.Dir,
		"command", r.tmpl.Exec,
		"error", err.Error(),
	)

	return res
}
