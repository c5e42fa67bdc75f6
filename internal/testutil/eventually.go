package testutil

import (
	"testing"
	"time"
)

// DefaultPollInterval is how often EventuallyDefault re-checks its
// condition -- fine enough to catch the push facade's scheduler thread
// waking up and dispatching within a handful of milliseconds of a
// broadcast, without spinning the CPU on every poll.
const DefaultPollInterval = 5 * time.Millisecond

// Eventually polls fn until it returns true or timeout elapses. Used by
// push-facade tests where the scheduler thread runs on its own
// goroutine and dispatch is observed asynchronously.
func Eventually(t *testing.T, timeout, interval time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.After(timeout)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if fn() {
			return
		}
		select {
		case <-deadline:
			if msg == "" {
				t.Fatalf("condition not met before timeout")
			}
			t.Fatalf("%s", msg)
		case <-ticker.C:
		}
	}
}

// EventuallyDefault is Eventually with this module's standard timeout and
// poll interval, for the common case of waiting on the push scheduler
// thread to observe a broadcast and dispatch.
func EventuallyDefault(t *testing.T, fn func() bool, msg string) {
	t.Helper()
	Eventually(t, DefaultTimeout, DefaultPollInterval, fn, msg)
}
