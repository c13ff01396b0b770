// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package policy

import (
	"time"

	"github.com/gogama/retryx/attempt"
)

// A Decision is a retry policy's verdict about a failed attempt.
//
// The zero value decision means: retry immediately, keeping the
// failure counter.
type Decision struct {
	// Abandon, when true, directs the retry engine to stop retrying
	// and propagate the last attempt's error unchanged to the caller.
	// When Abandon is true the other fields are ignored.
	Abandon bool

	// Delay is how long the retry engine sleeps before re-invoking the
	// operation. Zero means retry immediately. A negative delay is
	// clamped to zero.
	Delay time.Duration

	// Reset, when true, directs the retry engine to reset the run's
	// failure counter to zero before the next attempt, so the next
	// failure is observed as the first. The first-failure timestamp
	// (attempt.Info.Since) is never reset.
	//
	// Reset supports protocols where a partial success, for example a
	// re-established connection, should restart the failure budget.
	// Most policies leave it false.
	Reset bool
}

// A Policy decides, after each failed attempt of a run, whether to
// abandon the run or to retry after a delay.
//
// The retry engine consults the Policy exactly once per failed
// attempt, with the run state in i. On the Nth failure of a run the
// policy observes i.Fails == N.
//
// Implementations of Policy must be safe for concurrent use by
// multiple goroutines. A Policy that blocks while deciding, for
// example to consult an external rate limiter, should honor
// cancellation of i.Context().
//
// A Policy is typically composed of the Decider and Waiter interfaces
// via the NewPolicy constructor. While you can implement Policy
// yourself, or adapt an ordinary function with Func, it is usually
// quicker to assemble one from the built-in Decider and Waiter
// implementations, or to use one of the built-in policies Default and
// Never.
type Policy interface {
	Decide(i *attempt.Info) Decision
}

// The Func type is an adapter to allow the use of ordinary functions
// as retry policies. If f is a function with the appropriate
// signature, Func(f) is a Policy that calls f.
//
// Every Func must be safe for concurrent use by multiple goroutines.
type Func func(i *attempt.Info) Decision

// Decide calls f(i).
func (f Func) Decide(i *attempt.Info) Decision {
	return f(i)
}

// Default is a general-purpose retry policy suitable for common use
// cases. It is a composition of DefaultDecider for retry decisions and
// DefaultWaiter for wait time calculations.
var Default Policy = policy{DefaultDecider, DefaultWaiter}

// Never is a policy that abandons on the first failure. It is useful
// if you want to use the other features of the retry engine but do not
// want retries.
var Never Policy = policy{Times(0), DefaultWaiter}

type policy struct {
	decider Decider
	waiter  Waiter
}

// NewPolicy composes a Decider and a Waiter into a retry Policy.
//
// The returned policy abandons when the decider returns false, and
// otherwise retries after the delay computed by the waiter. The waiter
// is not consulted when the decider abandons.
func NewPolicy(d Decider, w Waiter) Policy {
	if d == nil {
		panic("retryx/policy: nil decider")
	}
	if w == nil {
		panic("retryx/policy: nil waiter")
	}
	return policy{decider: d, waiter: w}
}

func (p policy) Decide(i *attempt.Info) Decision {
	if !p.decider.Decide(i) {
		return Decision{Abandon: true}
	}

	return Decision{Delay: p.waiter.Wait(i)}
}
