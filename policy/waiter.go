// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package policy

import (
	"time"

	"github.com/gogama/retryx/attempt"
)

// A Waiter specifies how long to wait before retrying a failed
// attempt.
//
// Implementations of Waiter must be safe for concurrent use by
// multiple goroutines.
//
// A policy built with NewPolicy will not call the Waiter if its
// Decider decided against retrying.
//
// This package provides two Waiter constructors, NewFixedWaiter and
// NewLinearWaiter, covering constant and linearly growing delays. In
// addition it provides a concrete instance suitable for many typical
// use cases, DefaultWaiter. Richer backoff schedules, jittered or
// otherwise, are the province of a custom Waiter.
type Waiter interface {
	Wait(i *attempt.Info) time.Duration
}

// DefaultWaiter is the default retry wait policy. It waits 50
// milliseconds after the first failure, growing by 50 milliseconds per
// subsequent failure up to a maximum wait of 1 second.
var DefaultWaiter = NewLinearWaiter(50*time.Millisecond, 50*time.Millisecond, 1*time.Second)

// NewFixedWaiter constructs a Waiter that always returns the given
// duration.
//
// Use NewFixedWaiter to obtain a constant retry backoff.
func NewFixedWaiter(d time.Duration) Waiter {
	return fixedWaiter(d)
}

type fixedWaiter time.Duration

func (w fixedWaiter) Wait(_ *attempt.Info) time.Duration {
	return time.Duration(w)
}

// NewLinearWaiter constructs a Waiter implementing a linearly growing
// delay.
//
// The delay for the Nth failure of the run is:
//
//	delay := min(base + (N-1)*step, max)
//
// Base and step must not be negative, and max must be at least equal
// to base. A zero base with a non-zero step produces an immediate
// first retry followed by linearly spaced ones.
func NewLinearWaiter(base, step, max time.Duration) Waiter {
	if base < 0 {
		panic("retryx/policy: base may not be negative")
	}
	if step < 0 {
		panic("retryx/policy: step may not be negative")
	}
	if max < base {
		panic("retryx/policy: max must be at least base")
	}
	return &linearWaiter{
		base: base,
		step: step,
		max:  max,
	}
}

type linearWaiter struct {
	base time.Duration
	step time.Duration
	max  time.Duration
}

func (w *linearWaiter) Wait(i *attempt.Info) time.Duration {
	n := int64(i.Fails) - 1
	if n < 0 {
		n = 0
	}

	// Dividing keeps the multiplication below from overflowing.
	if w.step > 0 && n > int64((w.max-w.base)/w.step) {
		return w.max
	}

	d := w.base + time.Duration(n)*w.step
	if d > w.max {
		return w.max
	}

	return d
}
