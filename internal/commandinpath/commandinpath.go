// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commandinpath turns a command name into the path of an executable file.
package commandinpath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrCommandNotFound is returned when no executable matches the command.
var ErrCommandNotFound = errors.New("command not found")

// Find resolves command to an absolute executable path.
//
// A command containing a path separator is taken relative to our own working
// directory, never the child's. Anything else is looked up in PATH; entries that
// are directories or lack an execute bit are skipped.
func Find(command string) (string, error) {
	if command == "" {
		return "", ErrCommandNotFound
	}

	if strings.ContainsRune(command, filepath.Separator) || strings.ContainsRune(command, '/') {
		abs, err := filepath.Abs(command)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %w", ErrCommandNotFound, command, err)
		}

		if !isExecutable(abs) {
			return "", fmt.Errorf("%w: %s", ErrCommandNotFound, command)
		}

		return abs, nil
	}

	for _, p := range filepath.SplitList(os.Getenv("PATH")) {
		if p == "" {
			continue
		}

		for _, name := range candidates(command) {
			full := filepath.Join(p, name)
			if !isExecutable(full) {
				continue
			}

			abs, err := filepath.Abs(full)
			if err != nil {
				continue
			}

			return abs, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrCommandNotFound, command)
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	if runtime.GOOS != "windows" && info.Mode()&0o111 == 0 {
		return false
	}

	return true
}

// candidates adds the PATHEXT suffixes on Windows when the command has no extension.
func candidates(command string) []string {
	if runtime.GOOS != "windows" || filepath.Ext(command) != "" {
		return []string{command}
	}

	exts := strings.Split(strings.ToLower(os.Getenv("PATHEXT")), ";")
	if len(exts) == 1 && exts[0] == "" {
		exts = []string{".com", ".exe", ".bat", ".cmd"}
	}

	res := make([]string, 0, len(exts)+1)
	res = append(res, command)

	for _, e := range exts {
		if e != "" {
			res = append(res, command+e)
		}
	}

	return res
}
