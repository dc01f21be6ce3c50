// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package output serialises match lines written by concurrent workers.
package output

import (
	"io"
	"sync"
)

// LineWriter writes whole lines to an underlying writer.
// It is safe for concurrent use; lines never interleave but their order is not defined.
type LineWriter struct {
	w  io.Writer
	mu sync.Mutex
}

// NewLineWriter wraps w.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: w}
}

// WriteLine writes s followed by a newline using a single Write call.
func (lw *LineWriter) WriteLine(s string) error {
	b := make([]byte, 0, len(s)+1)
	b = append(b, s...)
	b = append(b, '\n')

	lw.mu.Lock()
	defer lw.mu.Unlock()

	_, err := lw.w.Write(b)

	return err //nolint:wrapcheck
}

// Write implements io.Writer. p is written under the same lock as WriteLine.
func (lw *LineWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	return lw.w.Write(p) //nolint:wrapcheck
}
