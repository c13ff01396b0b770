// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gogama/retryx"
	"github.com/gogama/retryx/attempt"
	"github.com/gogama/retryx/policy"
)

func ExampleRunner_Run() {
	calls := 0
	flaky := func(_ context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("flake")
		}
		return nil
	}

	r := &retryx.Runner{
		Policy: policy.NewPolicy(policy.Times(5), policy.NewFixedWaiter(0)),
	}
	err := r.Run(context.Background(), flaky)
	fmt.Println(err, calls)
	// Output: <nil> 3
}

func ExampleRunValue() {
	calls := 0
	fetch := func(_ context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("flake")
		}
		return "payload", nil
	}

	r := &retryx.Runner{
		Policy: policy.Func(func(i *attempt.Info) policy.Decision {
			return policy.Decision{Delay: time.Duration(i.Fails-1) * 100 * time.Millisecond}
		}),
	}
	v, err := retryx.RunValue(r, context.Background(), fetch)
	fmt.Println(v, err)
	// Output: payload <nil>
}

func ExampleRunner_Run_abandon() {
	fatal := errors.New("not worth retrying")
	r := &retryx.Runner{Policy: policy.Never}
	err := r.Run(context.Background(), func(_ context.Context) error {
		return fatal
	})
	fmt.Println(errors.Is(err, fatal))
	// Output: true
}
