// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package template

import "errors"

// Mode selects how the directory reaches the command. A run uses exactly one mode.
type Mode int

const (
	// ModePlaceholder substitutes the directory into the arguments and keeps our working directory.
	ModePlaceholder Mode = iota
	// ModeWorkdir runs the command inside the directory and leaves the arguments alone.
	ModeWorkdir
)

const (
	modePlaceholderStr = "placeholder"
	modeWorkdirStr     = "workdir"
	modeUnknownStr     = "unknown"
)

// ErrUnknownMode is returned by ParseMode for unrecognised input.
var ErrUnknownMode = errors.New("unknown substitution mode")

// Modes lists the accepted mode names.
func Modes() []string {
	return []string{modePlaceholderStr, modeWorkdirStr}
}

// String returns the string representation of the Mode.
func (m Mode) String() string {
	switch m {
	case ModePlaceholder:
		return modePlaceholderStr
	case ModeWorkdir:
		return modeWorkdirStr
	default:
		return modeUnknownStr
	}
}

// ParseMode converts a name into a Mode. The empty string selects ModePlaceholder.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", modePlaceholderStr:
		return ModePlaceholder, nil
	case modeWorkdirStr:
		return ModeWorkdir, nil
	default:
		return Mode(-1), ErrUnknownMode
	}
}
