// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runner

import (
	"errors"
	"fmt"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResults(t *testing.T) {
	startErr := fmt.Errorf("%w: %w", ErrCouldNotStartProcess, errors.New("no such file"))

	res := Results{
		{Dir: "a", Status: StatusSuccess, Matched: true},
		{Dir: "b", Status: StatusFailure},
		{Dir: "c", Status: StatusError, Error: startErr},
		{Dir: "d", Status: StatusSkipped, Error: ErrSkipped},
		nil,
	}

	assert.Equal(t, 1, res.Matched())
	assert.Equal(t, 1, res.Count(StatusSuccess))
	assert.Equal(t, 1, res.Count(StatusFailure))
	assert.Equal(t, 1, res.Count(StatusError))
	assert.Equal(t, 1, res.Count(StatusSkipped))

	err := res.Errors()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrCouldNotStartProcess)
	assert.Contains(t, err.Error(), "* c: could not start process: no such file\n")
	assert.NotContains(t, err.Error(), "* d:")

	var merr *multierror.Error

	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 1, "skipped units are left out")
	assert.Equal(t, "c: could not start process: no such file", merr.Errors[0].Error())
}

func TestResults_NoErrors(t *testing.T) {
	res := Results{
		{Dir: "a", Status: StatusSuccess, Matched: true},
		{Dir: "b", Status: StatusFailure},
	}

	require.NoError(t, res.Errors())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "success", StatusSuccess.String())
	assert.Equal(t, "failure", StatusFailure.String())
	assert.Equal(t, "error", StatusError.String())
	assert.Equal(t, "skipped", StatusSkipped.String())
	assert.Equal(t, "unknown", Status(99).String())
}
