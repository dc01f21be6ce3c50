// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI escape codes for the diagnostic log stream.
// Colour is disabled by NO_COLOR, forced by FORCE_COLOR, and otherwise follows
// whether stderr is a terminal (golang.org/x/term).
package color
