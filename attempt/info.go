// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package attempt

import (
	"context"
	"time"

	"github.com/gogama/retryx/transient"
)

// An Info represents the state of a single run of a retryable
// operation.
//
// When a run of an operation is requested, an Info is created for it.
// The Info is updated as the run progresses (for example when an
// attempt fails, or when a retry is about to be made) and is consulted
// by retry policies, timeout policies, and event handlers.
//
// Retry and timeout policies and event handlers may set values on an
// Info using its SetValue method and read them back using the Value
// method. However, they should treat the structure's exported field
// values as immutable and leave them unmodified, as the run state is
// vital to the correct functioning of the retry loop.
//
// Each run of an operation gets its own independent Info. The retry
// engine never shares an Info between concurrent runs, so policies and
// handlers may rely on seeing a consistent single-run view.
type Info struct {
	// Start is the start time of the run. It is assigned a non-zero
	// value when the run starts, and this value remains constant
	// thereafter.
	Start time.Time

	// End is the end time of the run. It contains the zero value until
	// the run ends, when it is set to the current time.
	End time.Time

	// Fails is the count of consecutive failed attempts within the
	// run. It is zero before the first attempt, one after the first
	// failure, and so on, so a retry policy consulted about the Nth
	// failure always observes Fails equal to N.
	//
	// Fails only ever shrinks if a retry policy explicitly requests a
	// counter reset in its decision.
	Fails int

	// Err is the error from the most recent failed attempt within the
	// run. It is nil before the first failure and nil again once an
	// attempt succeeds.
	//
	// When the run ends in failure, Err is the same error value the
	// retry engine returns to the caller, except where the engine
	// documents otherwise (context cancellation, callback failure).
	Err error

	// Since is the time of the first failure within the run. It is the
	// zero value until the first failure, is captured exactly once,
	// and remains constant across all subsequent failures of the run.
	//
	// Since is captured with time.Now and therefore carries a
	// monotonic clock reading: durations computed against it, for
	// example by a retry policy implementing its own deadline, are
	// immune to wall-clock adjustments.
	Since time.Time

	// Timeouts is the count of the number of times an attempt timed
	// out during the run.
	//
	// Cancellation of the run's own context does not contribute to the
	// counter, but if an attempt timeout and a run cancellation
	// coincide, the counter will be incremented by one due to the
	// attempt timeout.
	Timeouts int

	// ctx is the context of the run, made available to policies and
	// handlers via Context.
	ctx context.Context

	// data contains arbitrary user data, interacted with via the Value
	// and SetValue methods.
	data context.Context
}

// Context returns the context the run was started with. It never
// returns nil: a run started without a context reports
// context.Background.
//
// Retry policies that block, for example while consulting an external
// system before deciding, should honor cancellation of this context.
func (i *Info) Context() context.Context {
	if i.ctx == nil {
		return context.Background()
	}

	return i.ctx
}

// SetContext records ctx as the run context returned by Context. It is
// called by the retry engine when the run starts and should not be
// called by policies or handlers.
func (i *Info) SetContext(ctx context.Context) {
	i.ctx = ctx
}

// Duration returns the duration of the run.
//
// If the run has not yet started, the duration is zero. If the run has
// ended, the duration returned is equal to End minus Start. Otherwise,
// it is equal to the current time minus Start. The return value is
// thus monotonically increasing over the life of the run, and becomes
// static when the run has ended.
func (i *Info) Duration() time.Duration {
	if !i.Started() {
		return time.Duration(0)
	} else if !i.Ended() {
		return time.Since(i.Start)
	}

	return i.End.Sub(i.Start)
}

// Retrying returns the time elapsed since the first failure of the
// run, or zero if no attempt has failed yet.
//
// Use Retrying in a retry policy to implement an overall retry
// deadline: abandon once the return value exceeds a threshold.
func (i *Info) Retrying() time.Duration {
	if i.Since == (time.Time{}) {
		return time.Duration(0)
	}

	return time.Since(i.Since)
}

// Started indicates whether the run has started.
//
// If the return value is false, the run has not started yet. If the
// return value is true, then the run has started, and Start is a
// non-zero time, indicating the run start time.
func (i *Info) Started() bool {
	return i.Start != (time.Time{})
}

// Ended indicates whether the run has ended.
//
// If the return value is false, the run is still in-flight. If the
// return value is true, then the run is over, End is a non-zero time,
// and there will be no further changes to the run state.
func (i *Info) Ended() bool {
	return i.End != (time.Time{})
}

// Timeout indicates whether Err currently contains a non-nil value
// which indicates a timeout, for example an attempt exceeding a
// timeout set by a timeout policy.
//
// Note that Timeout may return false even if Timeouts > 0 (if the most
// recent attempt did not end in a timeout); and it may return true
// before the counter is incremented for the current failure.
func (i *Info) Timeout() bool {
	cat := transient.Categorize(i.Err)
	return cat == transient.Timeout
}

// SetValue allows policies and event handlers to store arbitrary data
// in the run state.
//
// The key must follow the same rules as the key parameter in
// context.WithValue, namely it:
//
// • it may not be nil;
//
// • it must be comparable;
//
// • it should not be of type string or any other built-in type to avoid
// collisions between different event handlers putting data into the
// same run.
func (i *Info) SetValue(key, value interface{}) {
	ctx := i.data
	if ctx == nil {
		ctx = context.Background()
	}

	i.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this run for key, or
// nil if there is no value associated with key.
func (i *Info) Value(key interface{}) interface{} {
	ctx := i.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}
