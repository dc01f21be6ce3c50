// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package lister enumerates the direct children of a root directory.
package lister

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrListDirectory is returned when the root directory cannot be enumerated.
var ErrListDirectory = errors.New("failed to list directory")

// FsFactory is a function that returns an afero filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// List returns every direct child of root, files and directories alike, joined onto root.
// Nothing is filtered and nothing is recursed into.
// The order of the result is not part of the contract.
//
// Any read failure, including one partway through, fails the whole listing.
func List(ctx context.Context, fs afero.Fs, root string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	infos, err := afero.ReadDir(fs, root)
	if err != nil {
		return nil, errors.Join(ErrListDirectory, err)
	}

	entries := make([]string, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, filepath.Join(root, info.Name()))
	}

	return entries, nil
}
