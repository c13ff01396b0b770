// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"

	"github.com/gogama/retryx/attempt"
)

// A Policy defines a timeout policy which may be plugged into the
// retry engine (retryx.Runner) to direct how to set the timeout for
// the initial attempt, as well as for any subsequent retries.
//
// The retry engine applies the timeout to each individual attempt via
// context.WithTimeout; a run with no timeout policy imposes no
// engine-side deadline at all.
//
// Implementations of Policy must be safe for concurrent use by
// multiple goroutines.
type Policy interface {
	// Timeout returns the timeout to set on the next attempt within
	// the run.
	//
	// Parameter i contains the current state of the run. The return
	// value is the timeout to set on the next attempt within the run.
	Timeout(i *attempt.Info) time.Duration
}

// Fixed constructs a timeout policy that uses the same value to set
// every attempt timeout. The return value is a timeout policy that
// always returns the value d.
//
// Use Fixed to create the typical timeout behavior supported by most
// retrying client software.
func Fixed(d time.Duration) Policy {
	return policy([]time.Duration{d})
}

// Adaptive constructs a timeout policy that varies the next timeout
// value if the previous attempt timed out.
//
// Use Adaptive if you find the operation's target often exhibits
// one-off slowness that can be cured by quickly timing out and
// retrying, but you also need to protect your application (and the
// target) from retry storms and failure if the target goes through a
// burst of slowness where most response times during the burst are
// slower than your usual quick timeout.
//
// Parameter usual represents the timeout value the policy will return
// for an initial attempt and for any retry where the immediately
// preceding attempt did not time out.
//
// Parameter after contains timeout values the policy will return if
// the previous attempt timed out. If this was the first timeout of the
// run, after[0] is returned; if the second, after[1], and so on. If
// more attempts have timed out within the run than after has elements,
// then the last element of after is returned.
//
// Consider the following timeout policy:
//
//	p := Adaptive(200*time.Millisecond, time.Second, 10*time.Second)
//
// The policy p will use 200 milliseconds as the usual timeout but if
// the preceding attempt timed out and was the first timeout of the
// run, it will use 1 second; and if the previous attempt timed out and
// was not the first attempt, it will use 10 seconds.
func Adaptive(usual time.Duration, after ...time.Duration) Policy {
	p := make([]time.Duration, 1, 1+len(after))
	p[0] = usual
	return policy(append(p, after...))
}

type policy []time.Duration

func (p policy) Timeout(i *attempt.Info) time.Duration {
	if !i.Timeout() {
		return p[0]
	}

	n := i.Timeouts
	if n > len(p)-1 {
		n = len(p) - 1
	}

	return p[n]
}
