// Copyright 2024 The zb Authors
// SPDX-License-Identifier: MIT

// Package testcontext provides contexts for tests that exercise logging code.
package testcontext

import (
	"context"
	"testing"

	"zombiezen.com/go/log/testlog"
)

// New returns a context that sends log output to the test's log
// and is canceled just before the test's cleanup functions run.
func New(tb testing.TB) context.Context {
	return testlog.WithTB(tb.Context(), tb)
}
