// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package policy provides flexible policies for deciding whether to
// retry a failed operation attempt, and how long to wait before
// retrying.
//
// The interface Policy defines a retry Policy. A Policy instance can
// be constructed using NewPolicy by providing a decision-maker,
// Decider, and a wait time calculator, Waiter. Both Decider and Waiter
// have constructors for common use cases, so that a useful policy can
// be quickly assembled:
//
//	decider := policy.Times(3).
//	               And(policy.Before(5 * time.Second)).
//	               And(policy.Errs(io.ErrUnexpectedEOF).Or(policy.TransientErr))
//	waiter := policy.NewLinearWaiter(0, 100*time.Millisecond, 2*time.Second)
//	p := policy.NewPolicy(decider, waiter)
//
// A policy may also be written directly as a function answering with a
// full Decision, using the Func adapter:
//
//	p := policy.Func(func(i *attempt.Info) policy.Decision {
//	    if i.Fails > 3 {
//	        return policy.Decision{Abandon: true}
//	    }
//	    return policy.Decision{Delay: time.Duration(i.Fails-1) * 100 * time.Millisecond}
//	})
//
// If the built-in functionality is insufficient, fully custom retry
// policies can be created via custom implementations of Decider,
// Waiter, or Policy.
package policy
