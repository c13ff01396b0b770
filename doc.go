// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package retryx provides a generic retry engine for fallible operations
within a simple and familiar interface.

Create a Runner to begin running operations. Its zero value retries
with a sensible default policy:

	r := &retryx.Runner{}
	err := r.Run(ctx, func(ctx context.Context) error {
		return store.Ping(ctx)
	})

Operations that return a value are run through the generic helpers
RunValue and Wrap:

	cfg, err := retryx.RunValue(r, ctx, func(ctx context.Context) (Config, error) {
		return loadConfig(ctx)
	})

For control over retry decisions and timing, build a policy from
components in package policy:

	decider := policy.Times(3).And(policy.TransientErr)
	waiter := policy.NewLinearWaiter(0, 100*time.Millisecond, time.Second)
	r := &retryx.Runner{
		Policy: policy.NewPolicy(decider, waiter),
	}

or write the policy as a single function:

	r := &retryx.Runner{
		Policy: policy.Func(func(i *attempt.Info) policy.Decision {
			if i.Retrying() > 30*time.Second {
				return policy.Decision{Abandon: true}
			}
			return policy.Decision{Delay: 250 * time.Millisecond}
		}),
	}

A type can carry its retry behavior with it by implementing
PolicySource; install it as the Runner's Source and the policy is
resolved through the interface at the start of every run, so a type
that embeds another and overrides RetryPolicy changes the behavior of
existing Runners without re-wrapping:

	type Service struct{}

	func (s *Service) RetryPolicy() policy.Policy { return policy.Default }

	r := &retryx.Runner{Source: &Service{}}

For control over individual attempt timeouts, set a timeout policy
using package timeout:

	r := &retryx.Runner{
		TimeoutPolicy: timeout.Fixed(10 * time.Second),
	}

To hook into the fine-grained details of the retry loop, install a
handler into the appropriate handler chain, or set the Runner's
BeforeRetry callback:

	log := log.New(os.Stdout, "", log.LstdFlags)
	handlers := &retryx.HandlerGroup{}
	handlers.PushBack(retryx.BeforeAttempt, retryx.HandlerFunc(
		func(_ retryx.Event, i *attempt.Info) {
			log.Printf("attempt after %d failures", i.Fails)
		}),
	)
	r := &retryx.Runner{
		Handlers: handlers,
	}

The engine never swallows an error: an abandoned run returns the last
attempt's error unchanged, cancellation of the run context returns the
context's error, and an error from the BeforeRetry callback abandons
the run and is returned as-is.
*/
package retryx
