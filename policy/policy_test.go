// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package policy

import (
	"syscall"
	"testing"
	"time"

	"github.com/gogama/retryx/attempt"
	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	for n := 1; n <= DefaultTimes; n++ {
		d := Default.Decide(&attempt.Info{Fails: n, Err: syscall.ECONNRESET})
		assert.False(t, d.Abandon, "expect retry on failure %d", n)
		assert.GreaterOrEqual(t, d.Delay, time.Duration(0))
		assert.LessOrEqual(t, d.Delay, time.Second)
	}
	d := Default.Decide(&attempt.Info{Fails: DefaultTimes + 1, Err: syscall.ETIMEDOUT})
	assert.True(t, d.Abandon, "expect abandonment on failure %d", DefaultTimes+1)
}

func TestNever(t *testing.T) {
	d := Never.Decide(&attempt.Info{Fails: 1})
	assert.True(t, d.Abandon)
}

func TestFunc(t *testing.T) {
	var got *attempt.Info
	f := Func(func(i *attempt.Info) Decision {
		got = i
		return Decision{Delay: 3 * time.Second}
	})
	i := &attempt.Info{Fails: 7}

	d := f.Decide(i)

	assert.Same(t, i, got)
	assert.Equal(t, Decision{Delay: 3 * time.Second}, d)
}

func TestNewPolicy(t *testing.T) {
	p := &testPolicy{}
	t.Run("Bad Args", func(t *testing.T) {
		assert.PanicsWithValue(t, "retryx/policy: nil decider", func() { NewPolicy(nil, p) })
		assert.PanicsWithValue(t, "retryx/policy: nil waiter", func() { NewPolicy(p, nil) })
	})
	t.Run("Retry", func(t *testing.T) {
		p.retry = true
		P := NewPolicy(p, p)
		d := P.Decide(&attempt.Info{Fails: 1})
		assert.Equal(t, Decision{Delay: time.Second}, d)
		assert.Equal(t, 1, p.d)
		assert.Equal(t, 1, p.w)
	})
	t.Run("Abandon", func(t *testing.T) {
		q := &testPolicy{retry: false}
		P := NewPolicy(q, q)
		d := P.Decide(&attempt.Info{Fails: 1})
		assert.Equal(t, Decision{Abandon: true}, d)
		assert.Equal(t, 1, q.d)
		assert.Equal(t, 0, q.w, "expect the waiter not to be consulted on abandonment")
	})
}

type testPolicy struct {
	retry bool
	d     int
	w     int
}

func (p *testPolicy) Decide(_ *attempt.Info) bool {
	p.d++
	return p.retry
}

func (p *testPolicy) Wait(_ *attempt.Info) time.Duration {
	p.w++
	return time.Second
}
