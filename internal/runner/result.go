// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Status is the outcome class of one unit of work.
type Status int

const (
	// StatusSuccess means the child exited normally with status zero.
	StatusSuccess Status = iota
	// StatusFailure means a non-zero exit status or termination by signal.
	StatusFailure
	// StatusError means the child could not be started at all.
	StatusError
	// StatusSkipped means the unit was never started because the run was cancelled.
	StatusSkipped
)

// String returns the string representation of the Status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusError:
		return "error"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result is the outcome of running the template for one directory.
type Result struct {
	Dir      string // The directory the command ran for.
	ExitCode int    // Child exit status, -1 when it never ran or was signalled.
	Status   Status // Outcome class.
	Matched  bool   // Outcome matched the polarity and Dir was printed.
	Error    error  // Start or output error, nil for ordinary failures.
}

// Results is the collected outcome of a run.
type Results []*Result

// Matched returns the number of directories that were printed.
func (r Results) Matched() int {
	n := 0

	for _, res := range r {
		if res != nil && res.Matched {
			n++
		}
	}

	return n
}

// Count returns the number of results with the given status.
func (r Results) Count(s Status) int {
	n := 0

	for _, res := range r {
		if res != nil && res.Status == s {
			n++
		}
	}

	return n
}

// Errors aggregates every unit error, or returns nil when there were none.
// Skipped units are not errors.
func (r Results) Errors() error {
	var merr *multierror.Error

	for _, res := range r {
		if res == nil || res.Error == nil || res.Status == StatusSkipped {
			continue
		}

		merr = multierror.Append(merr, fmt.Errorf("%s: %w", res.Dir, res.Error))
	}

	return merr.ErrorOrNil()
}
