// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package pool fans a list of items out over a fixed number of workers.
package pool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Size returns the number of workers to use.
// Zero or a negative count selects runtime.GOMAXPROCS(0).
func Size(workers int) int {
	if workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return workers
}

// Run calls fn once for every item, with at most Size(workers) calls in flight.
// The result slice is indexed like items regardless of completion order.
//
// Units are independent: fn never sees another unit's result and nothing is retried.
// Once ctx is done, items that have not started are still passed to fn, with the
// done context, so the caller can record them; fn decides what skipping means.
func Run[T any](ctx context.Context, workers int, items []string, fn func(context.Context, string) T) []T {
	results := make([]T, len(items))

	g := new(errgroup.Group)
	g.SetLimit(Size(workers))

	for i, item := range items {
		g.Go(func() error {
			results[i] = fn(ctx, item)
			return nil
		})
	}

	_ = g.Wait()

	return results
}
