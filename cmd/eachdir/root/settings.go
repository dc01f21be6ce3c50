// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package root

import (
	"context"
	"errors"

	"github.com/matt-FFFFFF/eachdir/internal/config"
	"github.com/matt-FFFFFF/eachdir/internal/ctxlog"
	"github.com/matt-FFFFFF/eachdir/internal/template"
	"github.com/urfave/cli/v3"
)

// ErrMissingCommand is returned when no command template follows the options.
var ErrMissingCommand = errors.New("missing COMMAND, usage: eachdir [options] COMMAND [ARGS...]")

// Settings is the configuration of one run. It is built once and not modified afterwards.
type Settings struct {
	Directory string
	Invert    bool
	Verbosity int
	Threads   int
	Silent    bool
	Mode      template.Mode
	Template  *template.Template
}

// NewSettings builds the run configuration from the parsed command.
// Values from the --config file fill in only the flags that were not set on the
// command line or through the environment.
func NewSettings(ctx context.Context, cmd *cli.Command) (*Settings, error) {
	tmpl, err := template.Parse(cmd.Args().Slice())
	if err != nil {
		return nil, errors.Join(ErrMissingCommand, err)
	}

	s := &Settings{
		Directory: cmd.String(directoryFlag),
		Invert:    cmd.Bool(invertFlag),
		Verbosity: cmd.Count(debugFlag),
		Threads:   cmd.Int(threadsFlag),
		Silent:    cmd.Bool(ignoreWarningsFlag),
		Template:  tmpl,
	}

	mode := cmd.String(modeFlag)

	if src := cmd.String(configFlag); src != "" {
		f, err := config.Load(ctx, config.FsFactory(), src)
		if err != nil {
			return nil, err
		}

		ctxlog.Debug(ctx, "loaded config file", "src", src)
		s.merge(f, cmd.IsSet, &mode)
	}

	if s.Mode, err = template.ParseMode(mode); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Settings) merge(f *config.File, isSet func(string) bool, mode *string) {
	if f.Directory != nil && !isSet(directoryFlag) {
		s.Directory = *f.Directory
	}

	if f.Invert != nil && !isSet(invertFlag) {
		s.Invert = *f.Invert
	}

	if f.Debug != nil && !isSet(debugFlag) {
		s.Verbosity = *f.Debug
	}

	if f.Threads != nil && !isSet(threadsFlag) {
		s.Threads = *f.Threads
	}

	if f.IgnoreWarnings != nil && !isSet(ignoreWarningsFlag) {
		s.Silent = *f.IgnoreWarnings
	}

	if f.Mode != nil && !isSet(modeFlag) {
		*mode = *f.Mode
	}
}
