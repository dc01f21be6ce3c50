// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger in a context.Context.
//
// The default logger writes pretty, optionally coloured records to stderr so that
// diagnostics never mix with the match lines eachdir prints on stdout.
// The starting level comes from EACHDIR_LOG_LEVEL and can be lowered for one
// context with WithVerbosity.
package ctxlog
