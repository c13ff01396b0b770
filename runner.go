// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import (
	"context"
	"errors"
	"time"

	"github.com/gogama/retryx/attempt"
	"github.com/gogama/retryx/policy"
	"github.com/gogama/retryx/timeout"
)

// An Operation is a single logical unit of fallible work which the
// retry engine may invoke multiple times within one run. Returning nil
// ends the run successfully; returning an error makes the attempt a
// failure subject to retry policy.
//
// The operation receives a context derived from the run context. If
// the Runner has a timeout policy, the derived context carries the
// attempt deadline, so operations should respect ctx to make attempt
// timeouts effective.
//
// Operations taking arguments, or returning values, are expressed as
// closures; see Wrap and RunValue.
type Operation func(ctx context.Context) error

// A PolicySource supplies its own retry policy. Install one in a
// Runner to have the policy resolved through the source at the start
// of every run, rather than fixed when the Runner is configured.
//
// PolicySource exists for types that carry their retry behavior with
// them. Because resolution happens through the interface at run time,
// a type that embeds another and overrides RetryPolicy changes the
// retry behavior of every Runner the value is installed in, with no
// re-wrapping.
type PolicySource interface {
	// RetryPolicy returns the retry policy for runs on behalf of this
	// value. It must not return nil: a nil policy is a configuration
	// error and fails the run with ErrNoPolicy.
	RetryPolicy() policy.Policy
}

// A CallbackSource supplies its own before-retry callback. If a
// Runner's Source also implements CallbackSource, and the Runner has
// no BeforeRetry callback of its own, the source's BeforeRetry method
// is used, resolved through the interface at run time just as the
// policy is.
type CallbackSource interface {
	// BeforeRetry is called under the same contract as
	// Runner.BeforeRetry.
	BeforeRetry(ctx context.Context, i *attempt.Info) error
}

// ErrNoPolicy is returned by Runner.Run when the Runner's policy
// source resolves to a nil policy. It indicates a configuration error,
// not an operation failure: the operation has not been invoked.
var ErrNoPolicy = errors.New("retryx: policy source returned nil policy")

var emptyHandlers = HandlerGroup{}

// A Runner is a retry engine for fallible operations. Its zero value
// is a valid configuration.
//
// The zero value runner retries with policy.Default, imposes no
// attempt timeouts, intercepts every failure, and has no callbacks or
// event handlers.
//
// A Runner holds no per-run state: every call to Run builds a fresh
// attempt.Info, so a single Runner is safe for concurrent use by
// multiple goroutines, and concurrent runs never observe one
// another. The Runner does not serialize concurrent runs of the same
// operation; an operation that is not reentrant must arrange its own
// exclusion.
type Runner struct {
	// Policy decides, after each failed attempt, whether to abandon
	// the run and how long to sleep before retrying.
	//
	// If Policy is nil and Source is nil, policy.Default is used.
	Policy policy.Policy
	// Source, if non-nil, supplies the retry policy for each run,
	// resolved through the PolicySource interface when the run starts.
	// Source takes precedence over Policy.
	Source PolicySource
	// BeforeRetry, if non-nil, is called once per failure the policy
	// decided to retry, strictly after the policy decision and
	// strictly before the retry wait. It receives the same run state
	// the policy received. Its error return is not absorbed into the
	// retry protocol: a non-nil error abandons the run immediately and
	// is returned to the caller as-is.
	//
	// If BeforeRetry is nil and Source implements CallbackSource, the
	// source's BeforeRetry method is used instead.
	BeforeRetry func(ctx context.Context, i *attempt.Info) error
	// TimeoutPolicy specifies how to set timeouts on individual
	// attempts.
	//
	// If TimeoutPolicy is nil, the Runner sets no attempt timeouts and
	// the only deadline governing the run is whatever the caller put
	// on the run context.
	TimeoutPolicy timeout.Policy
	// Intercept, if non-nil, is a failure allow-list: only failures
	// for which it returns true enter the retry protocol. A failure
	// for which it returns false bypasses the policy entirely and
	// propagates to the caller unchanged.
	//
	// If Intercept is nil, every failure is offered to the policy.
	Intercept func(err error) bool
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during a run.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
}

// Run invokes the operation, retrying failures according to the
// Runner's policy, and returns the operation's eventual success or its
// final error.
//
// After every failed attempt the policy is consulted with the current
// run state: failure count (1 on the first failure, 2 on the second,
// and so on), the failure itself, and the time of the run's first
// failure. If the policy abandons, Run returns the error from the last
// attempt unchanged, never a synthetic "retries exhausted" wrapper, so
// the caller can inspect it with errors.Is and errors.As. Otherwise
// Run sleeps for the policy's delay and re-invokes the operation. A
// negative delay is clamped to zero; a zero delay retries without
// sleeping. Run imposes no retry cap of its own: a policy that never
// abandons retries forever.
//
// Run suspends at four points: invoking the operation, consulting the
// policy, running the BeforeRetry callback, and the retry wait. If ctx
// is cancelled, the wait is cut short and Run returns the context's
// error; the operation, policy, and callback are expected to honor ctx
// themselves, and Run checks ctx after each so a cancellation they
// observed (or ignored) still ends the run.
//
// Run panics if op is nil. A nil ctx is treated as
// context.Background.
func (r *Runner) Run(ctx context.Context, op Operation) error {
	if op == nil {
		panic("retryx: nil operation")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	retryPolicy, err := r.resolvePolicy()
	if err != nil {
		return err
	}

	beforeRetry := r.resolveBeforeRetry()

	handlers := r.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}

	var i attempt.Info
	i.SetContext(ctx)
	handlers.run(BeforeRunStart, &i)
	i.Start = time.Now()

	for {
		err = r.invoke(ctx, op, &i, handlers)
		i.Err = err
		if err != nil {
			i.Fails++
			if i.Since.IsZero() {
				i.Since = time.Now()
			}
			if i.Timeout() {
				i.Timeouts++
				handlers.run(AfterAttemptTimeout, &i)
			}
		}
		handlers.run(AfterAttempt, &i)
		if err == nil {
			break
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
			i.Err = err
			break
		}
		if r.Intercept != nil && !r.Intercept(err) {
			break
		}
		d := retryPolicy.Decide(&i)
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
			i.Err = err
			break
		}
		if d.Abandon {
			break
		}
		if d.Reset {
			i.Fails = 0
		}
		handlers.run(BeforeWait, &i)
		if beforeRetry != nil {
			if cbErr := beforeRetry(ctx, &i); cbErr != nil {
				err = cbErr
				i.Err = err
				break
			}
		}
		if waitErr := wait(ctx, d.Delay); waitErr != nil {
			err = waitErr
			i.Err = err
			break
		}
	}

	i.End = time.Now()
	handlers.run(AfterRunEnd, &i)
	return err
}

// Wrap returns an operation with the same signature as op that, when
// invoked, runs op through the Runner. Use Wrap when the retried form
// of an operation is handed to code that should not know about
// retries.
//
// Wrap panics if op is nil. For value-returning operations, see the
// package-level Wrap function.
func (r *Runner) Wrap(op Operation) Operation {
	if op == nil {
		panic("retryx: nil operation")
	}
	return func(ctx context.Context) error {
		return r.Run(ctx, op)
	}
}

func (r *Runner) invoke(ctx context.Context, op Operation, i *attempt.Info, handlers *HandlerGroup) error {
	if r.TimeoutPolicy != nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.TimeoutPolicy.Timeout(i))
		defer cancel()
	}
	handlers.run(BeforeAttempt, i)
	return op(ctx)
}

func (r *Runner) resolvePolicy() (policy.Policy, error) {
	if r.Source != nil {
		p := r.Source.RetryPolicy()
		if p == nil {
			return nil, ErrNoPolicy
		}
		return p, nil
	}
	if r.Policy != nil {
		return r.Policy, nil
	}

	return policy.Default, nil
}

func (r *Runner) resolveBeforeRetry() func(context.Context, *attempt.Info) error {
	if r.BeforeRetry != nil {
		return r.BeforeRetry
	}
	if cs, ok := r.Source.(CallbackSource); ok {
		return cs.BeforeRetry
	}

	return nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		// Negative delays clamp to zero: no timer, but cancellation
		// still wins over an immediate retry.
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
