// Copyright 2026 The retryx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retryx

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Runner to extend it with custom
// functionality.
type Event int

const (
	// BeforeRunStart identifies the event that occurs before the run
	// starts.
	//
	// When Runner fires BeforeRunStart, the run state is non-nil but
	// no attempt has been made and the start time is not yet set.
	BeforeRunStart Event = iota
	// BeforeAttempt identifies the event that occurs before each
	// individual attempt during the run, including the initial one.
	//
	// When Runner fires BeforeAttempt, the run state's failure count
	// and error reflect the attempts made so far: zero and nil on the
	// initial attempt.
	BeforeAttempt
	// AfterAttemptTimeout identifies the event that occurs after an
	// attempt failed because of a timeout error.
	//
	// When Runner fires AfterAttemptTimeout, the run state's error
	// field is set to the timeout error, and its attempt timeout
	// counter has been incremented.
	AfterAttemptTimeout
	// AfterAttempt identifies the event that occurs after an attempt
	// is concluded, regardless of whether it concluded successfully or
	// not.
	//
	// When Runner fires AfterAttempt, the run state's error field
	// holds the attempt's error, or nil if the attempt succeeded, and
	// for a failed attempt the failure counter and first-failure
	// timestamp have been updated.
	//
	// Note that AfterAttempt always fires on every attempt, and that
	// it runs before the retry policy is consulted for a retry
	// decision.
	AfterAttempt
	// BeforeWait identifies the event that occurs after the retry
	// policy has decided to retry a failed attempt, but before the
	// retry wait period begins.
	//
	// When Runner fires BeforeWait, the run state's error field is set
	// to the failure about to be retried. BeforeWait handlers run
	// before the Runner's BeforeRetry callback, if one is configured.
	//
	// Note that BeforeWait never fires for a failure the policy
	// abandoned.
	BeforeWait
	// AfterRunEnd identifies the event that occurs after the run ends.
	//
	// When Runner fires AfterRunEnd, the run state is in the same
	// state it was in after the final attempt (and last AfterAttempt
	// event) EXCEPT that the end time is set to the time the run
	// ended.
	AfterRunEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeRunStart",
	"BeforeAttempt",
	"AfterAttemptTimeout",
	"AfterAttempt",
	"BeforeWait",
	"AfterRunEnd",
}

// Events returns a slice containing all events which can occur during
// a run by Runner, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeRunStart,
		BeforeAttempt,
		AfterAttemptTimeout,
		AfterAttempt,
		BeforeWait,
		AfterRunEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
