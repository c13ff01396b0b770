// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

import (
	"github.com/gogama/retryx/attempt"
)

// A HandlerGroup is a group of event handler chains which can be
// installed in a Runner.
type HandlerGroup struct {
	handlers [][]Handler
}

// PushBack adds an event handler to the back of the event handler chain
// for a specific event type.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("retryx: nil handler")
	}

	if g.handlers == nil {
		g.handlers = make([][]Handler, numEvents)
	}

	g.handlers[evt] = append(g.handlers[evt], h)
}

func (g *HandlerGroup) run(evt Event, i *attempt.Info) {
	n := int(evt)
	if n < len(g.handlers) {
		run(g.handlers[n], evt, i)
	}
}

func run(chain []Handler, evt Event, i *attempt.Info) {
	for _, h := range chain {
		h.Handle(evt, i)
	}
}

// A Handler handles the occurrence of an event during a run.
//
// Handlers observe and may annotate the run state, but have no vote in
// the retry protocol: a handler cannot abandon a run, and a panic from
// a handler propagates to the caller. Use the Runner's BeforeRetry
// callback for a per-retry hook whose error abandons the run.
type Handler interface {
	Handle(Event, *attempt.Info)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as event handlers. If f is a function with the appropriate
// signature, HandlerFunc(f) is a Handler that calls f.
type HandlerFunc func(Event, *attempt.Info)

// Handle calls f(evt, i).
func (f HandlerFunc) Handle(evt Event, i *attempt.Info) {
	f(evt, i)
}
