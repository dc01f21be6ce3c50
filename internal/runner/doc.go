// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runner runs the command template for a single directory.
//
// The child always gets the null device as stdin, so commands that read input see
// end of file at once. Its stdout is discarded unless verbosity is 2 or more, and its
// stderr is shown unless the run is silent. A directory is printed when the child's
// success, XORed with the invert option, is true. A child that cannot be started is
// reported as an error for that directory only and is never printed.
package runner
