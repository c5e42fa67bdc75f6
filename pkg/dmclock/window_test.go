package dmclock

import (
	"sync"
	"testing"
)

func TestWindow_WeightOnlyChange_AdjustsTotalWeightNotHeaps(t *testing.T) {
	current := NewClientInfo(0, 2, 0, ClassArea)
	lookup := func(string) ClientInfo { return current }
	q := newTestQueue(t, lookup, Options{WinSize: 1})

	q.AddRequest("c1", 0, Distance{Rho: 1, Delta: 1}, 0)

	q.mu.Lock()
	before := q.totalWgt
	q.mu.Unlock()
	if before != 2 {
		t.Fatalf("expected total_wgt=2 after seeding a weight-2 client, got %v", before)
	}

	current = NewClientInfo(0, 5, 0, ClassArea)

	q.mu.Lock()
	q.maybeRollWindow(1.0)
	after := q.totalWgt
	idx := q.clientMap["c1"].heapIdx[heapBest]
	q.mu.Unlock()

	if after != 5 {
		t.Fatalf("expected total_wgt=5 after a weight-only change, got %v", after)
	}
	if idx < 0 {
		t.Fatalf("expected the client to remain seated in best_heap across a weight-only change")
	}
}

func TestWindow_Compensation_BelowThreshold_NoCompensation(t *testing.T) {
	info := NewClientInfo(100, 1, 200, ClassReservation)
	q := newTestQueue(t, staticLookup(info), Options{WinSize: 1})

	q.AddRequest("r1", 0, Distance{Rho: 1, Delta: 1}, 0)

	q.mu.Lock()
	q.clientMap["r1"].r0Counter = 50 // well under the 80% threshold
	q.maybeRollWindow(1.0)
	comp := q.clientMap["r1"].rCompensation
	q.mu.Unlock()

	if comp != 0 {
		t.Fatalf("expected no compensation below the 80%% threshold, got %v", comp)
	}
}

func TestWindow_Compensation_AccumulatesAcrossWindowsButStaysClamped(t *testing.T) {
	info := NewClientInfo(100, 1, 200, ClassReservation)
	q := newTestQueue(t, staticLookup(info), Options{WinSize: 1})

	q.AddRequest("r1", 0, Distance{Rho: 1, Delta: 1}, 0)

	q.mu.Lock()
	q.clientMap["r1"].r0Counter = 85
	q.maybeRollWindow(1.0)
	q.clientMap["r1"].r0Counter = 85
	q.maybeRollWindow(2.0)
	comp := q.clientMap["r1"].rCompensation
	q.mu.Unlock()

	if comp != 10 {
		t.Fatalf("expected compensation to stay clamped at 10 across repeated shortfalls, got %v", comp)
	}
}

func TestWindow_ClassTransitionOutOfReservation_ClearsCompensation(t *testing.T) {
	current := NewClientInfo(100, 1, 200, ClassReservation)
	lookup := func(string) ClientInfo { return current }
	q := newTestQueue(t, lookup, Options{WinSize: 1})

	q.AddRequest("r1", 0, Distance{Rho: 1, Delta: 1}, 0)

	q.mu.Lock()
	q.clientMap["r1"].r0Counter = 85
	q.maybeRollWindow(1.0)
	comp := q.clientMap["r1"].rCompensation
	q.mu.Unlock()
	if comp != 10 {
		t.Fatalf("expected compensation of 10 before the transition, got %v", comp)
	}

	current = NewClientInfo(0, 1, 0, ClassArea)

	q.mu.Lock()
	q.maybeRollWindow(2.0)
	after := q.clientMap["r1"].rCompensation
	q.mu.Unlock()

	if after != 0 {
		t.Fatalf("expected compensation cleared after leaving reservation class, got %v", after)
	}
}

func TestWindow_ClassTransition_SeedsTagFromNewClassPrimaryHeap(t *testing.T) {
	current := NewClientInfo(0, 1, 0, ClassArea)
	lookup := func(string) ClientInfo { return current }
	q := newTestQueue(t, lookup, Options{WinSize: 1})

	// Establish an existing burst client so heapBurst has a top to seed from.
	q.AddRequest("existing-burst", 0, Distance{Rho: 1, Delta: 1}, 0)
	q.mu.Lock()
	// Force it into the burst heaps directly to give heapBurst a top.
	rec := q.clientMap["existing-burst"]
	for _, k := range classHeaps(ClassArea) {
		q.heaps[k].remove(rec)
	}
	rec.info = NewClientInfo(0, 1, 40, ClassBurst)
	rec.prevTag.Proportion = 500
	for _, k := range classHeaps(ClassBurst) {
		q.heaps[k].insert(rec)
	}
	q.mu.Unlock()

	q.AddRequest("c1", 0, Distance{Rho: 1, Delta: 1}, 0)
	current = NewClientInfo(0, 1, 40, ClassBurst)

	q.mu.Lock()
	q.maybeRollWindow(1.0)
	seeded := q.clientMap["c1"].prevTag.Proportion
	q.mu.Unlock()

	if seeded != 500 {
		t.Fatalf("expected transitioning client's tag seeded from burst_heap top (500), got %v", seeded)
	}
}

func TestWindow_PoolGone_RemovesWeightButKeepsRecordUntilCleaned(t *testing.T) {
	gone := false
	lookup := func(string) ClientInfo {
		if gone {
			return NewClientInfo(0, 0, 0, ClassOther)
		}
		return NewClientInfo(0, 3, 0, ClassArea)
	}
	q := newTestQueue(t, lookup, Options{WinSize: 1})

	q.AddRequest("c1", 0, Distance{Rho: 1, Delta: 1}, 0)
	q.mu.Lock()
	before := q.totalWgt
	q.mu.Unlock()
	if before != 3 {
		t.Fatalf("expected total_wgt=3, got %v", before)
	}

	gone = true
	q.mu.Lock()
	q.maybeRollWindow(1.0)
	after := q.totalWgt
	_, stillPresent := q.clientMap["c1"]
	q.mu.Unlock()

	if after != 0 {
		t.Fatalf("expected total_wgt folded back to 0 once the pool is gone, got %v", after)
	}
	if !stillPresent {
		t.Fatalf("expected the record to remain until the idle/erase cleaner removes it")
	}
}

// A window rollover must notify the observer once per known client, so a
// dashboard's window-rollover row actually fires (SPEC_FULL.md's
// "dispatch/window/idle/erase events" contract).
func TestWindow_Rollover_EmitsWindowRolloverEvent(t *testing.T) {
	info := NewClientInfo(0, 1, 0, ClassArea)
	q := newTestQueue(t, staticLookup(info), Options{WinSize: 1})

	var mu sync.Mutex
	var got []Event[string]
	q.SetObserver(ObserverFunc(func(e Event[string]) {
		mu.Lock()
		got = append(got, e)
		mu.Unlock()
	}))

	q.AddRequest("c1", 0, Distance{Rho: 1, Delta: 1}, 0)

	q.mu.Lock()
	q.maybeRollWindow(1.0)
	q.mu.Unlock()

	mu.Lock()
	defer mu.Unlock()
	found := false
	for _, e := range got {
		if e.Kind == EventWindowRollover && e.ClientID == "c1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an EventWindowRollover for c1, got %+v", got)
	}
}
