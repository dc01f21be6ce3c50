// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads the optional YAML defaults file.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/eachdir/internal/ctxlog"
	"github.com/matt-FFFFFF/eachdir/internal/template"
	"github.com/spf13/afero"
)

var (
	// ErrLoadConfig is returned when the defaults file cannot be read or parsed.
	ErrLoadConfig = errors.New("failed to load config file")
	// ErrInvalidConfig is returned when a value in the defaults file is out of range.
	ErrInvalidConfig = errors.New("invalid config value")
)

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// File is the defaults file. A nil field was not present in the file.
type File struct {
	Directory      *string `yaml:"directory"`
	Invert         *bool   `yaml:"invert"`
	Debug          *int    `yaml:"debug"`
	Threads        *int    `yaml:"threads"`
	IgnoreWarnings *bool   `yaml:"ignore_warnings"`
	Mode           *string `yaml:"mode"`
}

// Load reads the defaults file at src.
// Local paths are read through fs. Anything else is treated as a go-getter source.
func Load(ctx context.Context, fs afero.Fs, src string) (*File, error) {
	if src == "" {
		return nil, fmt.Errorf("%w: empty path", ErrLoadConfig)
	}

	var (
		data []byte
		err  error
	)

	if isLocal(src) {
		data, err = afero.ReadFile(fs, src)
	} else {
		ctxlog.Debug(ctx, "fetching remote config", "src", src)
		data, err = fetch(ctx, src)
	}

	if err != nil {
		return nil, errors.Join(ErrLoadConfig, err)
	}

	return Parse(data)
}

// Parse decodes a defaults file. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	f := &File{}

	if len(bytes.TrimSpace(data)) == 0 {
		return f, nil
	}

	if err := yaml.UnmarshalWithOptions(data, f, yaml.DisallowUnknownField()); err != nil {
		return nil, errors.Join(ErrLoadConfig, err)
	}

	if err := f.validate(); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *File) validate() error {
	if f.Threads != nil && *f.Threads < 0 {
		return fmt.Errorf("%w: threads must not be negative, got %d", ErrInvalidConfig, *f.Threads)
	}

	if f.Debug != nil && *f.Debug < 0 {
		return fmt.Errorf("%w: debug must not be negative, got %d", ErrInvalidConfig, *f.Debug)
	}

	if f.Mode != nil {
		if _, err := template.ParseMode(*f.Mode); err != nil {
			return errors.Join(ErrInvalidConfig, err)
		}
	}

	return nil
}
