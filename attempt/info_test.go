// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package attempt

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInfo_Context(t *testing.T) {
	i := &Info{}
	assert.Equal(t, context.Background(), i.Context())

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "x")
	i.SetContext(ctx)
	assert.Same(t, ctx, i.Context())
}

func TestInfo_Duration(t *testing.T) {
	i := &Info{}
	assert.Equal(t, time.Duration(0), i.Duration())

	i.Start = time.Now()
	a := i.Duration()
	b := i.Duration()
	assert.GreaterOrEqual(t, a, time.Duration(0))
	assert.GreaterOrEqual(t, b, a, "expect duration to be monotonically increasing in-flight")

	i.End = i.Start.Add(time.Minute)
	assert.Equal(t, time.Minute, i.Duration())
	assert.Equal(t, time.Minute, i.Duration(), "expect duration to be static after the run ends")
}

func TestInfo_Retrying(t *testing.T) {
	i := &Info{}
	assert.Equal(t, time.Duration(0), i.Retrying())

	i.Since = time.Now().Add(-time.Second)
	assert.GreaterOrEqual(t, i.Retrying(), time.Second)
}

func TestInfo_StartedEnded(t *testing.T) {
	i := &Info{}
	assert.False(t, i.Started())
	assert.False(t, i.Ended())

	i.Start = time.Now()
	assert.True(t, i.Started())
	assert.False(t, i.Ended())

	i.End = time.Now()
	assert.True(t, i.Started())
	assert.True(t, i.Ended())
}

func TestInfo_Timeout(t *testing.T) {
	i := &Info{}
	assert.False(t, i.Timeout())

	i.Err = errors.New("foo")
	assert.False(t, i.Timeout())

	i.Err = context.DeadlineExceeded
	assert.True(t, i.Timeout())

	i.Err = syscall.ETIMEDOUT
	assert.True(t, i.Timeout())

	i.Err = context.Canceled
	assert.False(t, i.Timeout())
}

func TestInfo_Value(t *testing.T) {
	type keyA struct{}
	type keyB struct{}

	i := &Info{}
	assert.Nil(t, i.Value(keyA{}))

	i.SetValue(keyA{}, "a")
	assert.Equal(t, "a", i.Value(keyA{}))
	assert.Nil(t, i.Value(keyB{}))

	i.SetValue(keyB{}, 2)
	assert.Equal(t, "a", i.Value(keyA{}))
	assert.Equal(t, 2, i.Value(keyB{}))

	i.SetValue(keyA{}, "z")
	assert.Equal(t, "z", i.Value(keyA{}), "expect later values to shadow earlier ones")
}
