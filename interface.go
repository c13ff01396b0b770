// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import (
	"context"
)

// Runnable is the interface that wraps the basic Run method.
//
// Run invokes an operation, retrying failures, and returns the
// operation's eventual success or its final error. Runner implements
// the Runnable interface, and any other Runnable implementation must
// behave substantially the same as Runner.Run.
type Runnable interface {
	Run(ctx context.Context, op Operation) error
}

// RunValue uses the specified Runnable to run a value-returning
// operation, using the same retry protocol as r.Run.
//
// On success, RunValue returns the value from the succeeding attempt
// and a nil error. On failure, it returns the zero value of T and the
// run's final error; a value produced by an earlier failed attempt is
// never returned.
func RunValue[T any](r Runnable, ctx context.Context, op func(ctx context.Context) (T, error)) (T, error) {
	var v T
	err := r.Run(ctx, func(ctx context.Context) error {
		var opErr error
		v, opErr = op(ctx)
		return opErr
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return v, nil
}

// Wrap returns an operation with the identical signature to op that,
// when invoked, runs op through the specified Runnable via RunValue.
//
// Use Wrap to build a retried form of an operation once and call it
// like the original:
//
//	fetch := retryx.Wrap(r, client.Fetch)
//	v, err := fetch(ctx)
//
// Wrap panics if r or op is nil.
func Wrap[T any](r Runnable, op func(ctx context.Context) (T, error)) func(ctx context.Context) (T, error) {
	if r == nil {
		panic("retryx: nil runnable")
	}
	if op == nil {
		panic("retryx: nil operation")
	}
	return func(ctx context.Context) (T, error) {
		return RunValue(r, ctx, op)
	}
}
