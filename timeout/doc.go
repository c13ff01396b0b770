// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout provides timeout policies which may be plugged into
// the retry engine (retryx.Runner) to control how individual attempt
// timeouts are set during a run.
//
// The simplest policy, constructed with Fixed, sets the same timeout
// on every attempt:
//
//	r := &retryx.Runner{
//	    TimeoutPolicy: timeout.Fixed(5 * time.Second),
//	}
//
// The adaptive policy, constructed with Adaptive, lengthens the
// timeout after an attempt has timed out:
//
//	r := &retryx.Runner{
//	    TimeoutPolicy: timeout.Adaptive(200*time.Millisecond, 2*time.Second),
//	}
//
// A Runner with no timeout policy sets no attempt timeouts: deadlines
// are then entirely the caller's affair, via the run context.
package timeout
