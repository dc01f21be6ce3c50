// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package template holds the user supplied command and resolves it for one directory.
package template

import (
	"errors"
	"slices"
	"strings"
	"unicode/utf8"
)

// Placeholder is replaced by the directory path in ModePlaceholder.
const Placeholder = "{}"

// ErrEmptyTemplate is returned when no executable was given.
var ErrEmptyTemplate = errors.New("command template is empty")

// Template is the parsed command. It is never modified after Parse and is safe to share between goroutines.
type Template struct {
	Exec string   // Executable name or path.
	Args []string // Argument tokens, possibly containing Placeholder.
}

// Invocation is a Template resolved for a single directory.
type Invocation struct {
	Exec string
	Args []string
	Dir  string // Working directory for the child, empty to inherit ours.
}

// Parse builds a Template from command line tokens, the first being the executable.
func Parse(tokens []string) (*Template, error) {
	if len(tokens) == 0 || strings.TrimSpace(tokens[0]) == "" {
		return nil, ErrEmptyTemplate
	}

	return &Template{
		Exec: tokens[0],
		Args: slices.Clone(tokens[1:]),
	}, nil
}

// Resolve produces the invocation for dir.
//
// In ModePlaceholder every "{}" in every argument becomes dir. A dir that is not
// valid UTF-8 is not substituted and the arguments pass through unchanged.
// In ModeWorkdir the arguments are untouched and the child runs inside dir.
func (t *Template) Resolve(dir string, mode Mode) Invocation {
	inv := Invocation{
		Exec: t.Exec,
		Args: slices.Clone(t.Args),
	}

	if mode == ModeWorkdir {
		inv.Dir = dir
		return inv
	}

	if !utf8.ValidString(dir) {
		return inv
	}

	for i, a := range inv.Args {
		inv.Args[i] = strings.ReplaceAll(a, Placeholder, dir)
	}

	return inv
}

// String renders the template the way it was typed.
func (t *Template) String() string {
	return strings.Join(slices.Concat([]string{t.Exec}, t.Args), " ")
}
