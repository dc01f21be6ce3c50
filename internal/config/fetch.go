// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter/v2"
)

// ErrFetch is returned when a remote defaults file cannot be downloaded.
var ErrFetch = errors.New("failed to fetch config file")

const (
	getterPathSeparator = "//"
	getterRefSeparator  = "?"
	minimumGetterParts  = 3 // scheme, host and path
)

// isLocal reports whether go-getter would treat src as a plain file path.
func isLocal(src string) bool {
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}

	req := &getter.Request{Src: src, Pwd: wd}

	ok, err := getter.Detect(req, &getter.FileGetter{})

	return ok && err == nil
}

// fetch downloads the directory holding src into a temporary location and reads the file.
// Git and similar getters only deal in directories, hence the split.
func fetch(ctx context.Context, src string) ([]byte, error) {
	dirURL, fileName := splitFileNameFromGetterURL(src)
	if dirURL == "" || fileName == "" {
		return nil, fmt.Errorf("%w: invalid URL format: %s", ErrFetch, src)
	}

	tmpDir, err := os.MkdirTemp("", "eachdir-getter-*")
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	res, err := client.Get(ctx, &getter.Request{
		Src:     dirURL,
		Dst:     filepath.Join(tmpDir, "g"),
		Pwd:     wd,
		GetMode: getter.ModeDir,
	})
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	data, err := os.ReadFile(filepath.Join(res.Dst, fileName))
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	return data, nil
}

// splitFileNameFromGetterURL returns the getter URL of the containing directory and the file name.
// A ref query on the last segment is carried over to the directory URL.
func splitFileNameFromGetterURL(url string) (string, string) {
	var ref string

	parts := strings.Split(url, getterPathSeparator)
	if len(parts) < minimumGetterParts {
		return "", ""
	}

	last := parts[len(parts)-1]

	if before, after, found := strings.Cut(last, getterRefSeparator); found {
		ref = after
		last = before
	}

	if filepath.Clean(last) == filepath.Dir(last) {
		return "", ""
	}

	fileName := filepath.Base(last)

	if dir := filepath.Dir(last); dir == "." {
		parts = parts[:len(parts)-1]
	} else {
		parts[len(parts)-1] = dir
	}

	dirURL := strings.Join(parts, getterPathSeparator)

	if ref != "" {
		dirURL += getterRefSeparator + ref
	}

	return dirURL, fileName
}
