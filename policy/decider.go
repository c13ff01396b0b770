// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package policy

import (
	"errors"
	"time"

	"github.com/gogama/retryx/attempt"
	"github.com/gogama/retryx/transient"
)

// A Decider decides if a retry should be done.
//
// Implementations of Decider must be safe for concurrent use by
// multiple goroutines.
//
// Use the built-in constructors Times, Before, and Errs, and the
// built-in decider TransientErr; or implement your own Decider. Use
// DeciderFunc to convert an ordinary function into a Decider, and to
// compose deciders logically using DeciderFunc.And and DeciderFunc.Or.
type Decider interface {
	Decide(i *attempt.Info) bool
}

// The DeciderFunc type is an adapter to allow the use of ordinary
// functions as retry deciders. It implements the Decider interface,
// and also provides the logical composition methods And and Or.
//
// Every DeciderFunc must be safe for concurrent use by multiple
// goroutines.
//
// Simple DeciderFunc functions can be composed into complex decision
// trees using the logical composition functions DeciderFunc.And and
// DeciderFunc.Or. Because of this composition ability, it will often
// be convenient to work directly with DeciderFunc rather than with
// Decider.
type DeciderFunc func(i *attempt.Info) bool

// DefaultTimes is the number of times Default will retry.
const DefaultTimes = 5

// DefaultDecider is a general-purpose retry decider suitable for
// common use cases. It will allow up to DefaultTimes retries (i.e. up
// to 6 total attempts) regardless of the failure, as a generic
// operation offers the engine no structure to classify. Compose your
// own decider, for example with Errs or TransientErr, when only some
// failures are worth retrying.
var DefaultDecider = Times(DefaultTimes)

// TransientErr is a decider that indicates a retry if the current
// error is transient according to transient.Categorize, for example a
// timeout, a connection refusal, or a connection reset.
//
// Compose it with other deciders, for example a retry cap constructed
// with Times, to get more complex functionality.
var TransientErr DeciderFunc = transientErr

// Decide returns true if a retry should be done, and false otherwise,
// after examining the current run state.
func (f DeciderFunc) Decide(i *attempt.Info) bool {
	return f(i)
}

// And composes two retry deciders into a new decider which returns true
// if both sub-deciders return true, and false otherwise.
//
// Short-circuit logic is used, so g will not be evaluated if f returns
// false.
func (f DeciderFunc) And(g DeciderFunc) DeciderFunc {
	return func(i *attempt.Info) bool {
		return f(i) && g(i)
	}
}

// Or composes two retry deciders into a new decider which returns
// true if either of the two sub-deciders returns true, but false if
// they both return false.
//
// Short-circuit logic is used, so g will not be evaluated if f returns
// true.
func (f DeciderFunc) Or(g DeciderFunc) DeciderFunc {
	return func(i *attempt.Info) bool {
		return f(i) || g(i)
	}
}

// Times constructs a retry decider which allows up to n retries. The
// returned decider returns true while the failure count i.Fails is at
// most n, and false otherwise. Since i.Fails is 1 on the first
// failure, Times(0) never retries.
func Times(n int) DeciderFunc {
	return func(i *attempt.Info) bool {
		return i.Fails <= n
	}
}

// Before constructs a retry decider allowing retries until a certain
// amount of time has elapsed since the first failure of the run. The
// returned decider returns true while i.Retrying() is less than d, and
// false afterward.
//
// Because the first-failure timestamp carries a monotonic clock
// reading, the deadline implemented by Before is immune to wall-clock
// adjustments.
func Before(d time.Duration) DeciderFunc {
	return func(i *attempt.Info) bool {
		return i.Retrying() < d
	}
}

// Errs constructs a retry decider allowing retries based on the
// failure's identity. If the most recent attempt error, or any error
// in its wrapped cause chain, matches one of the targets in the sense
// of errors.Is, the decider returns true. Otherwise, it returns false.
func Errs(targets ...error) DeciderFunc {
	ts := make([]error, len(targets))
	copy(ts, targets)
	return func(i *attempt.Info) bool {
		for _, t := range ts {
			if errors.Is(i.Err, t) {
				return true
			}
		}
		return false
	}
}

func transientErr(i *attempt.Info) bool {
	return transient.Categorize(i.Err) != transient.Not
}
