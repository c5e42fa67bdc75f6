package dmclock

import "testing"

func TestClientRecord_AddRequest_ReportsWasEmpty(t *testing.T) {
	rec := newClientRecord[string, int]("c", 0, NewClientInfo(0, 1, 0, ClassArea), 0)

	if wasEmpty := rec.addRequest(RequestTag{}, 1); !wasEmpty {
		t.Fatalf("expected first add to report wasEmpty=true")
	}
	if wasEmpty := rec.addRequest(RequestTag{}, 2); wasEmpty {
		t.Fatalf("expected second add to report wasEmpty=false")
	}
	if len(rec.pending) != 2 {
		t.Fatalf("expected 2 pending entries, got %d", len(rec.pending))
	}
}

func TestClientRecord_PopFront_FIFO(t *testing.T) {
	rec := newClientRecord[string, int]("c", 0, NewClientInfo(0, 1, 0, ClassArea), 0)
	rec.addRequest(RequestTag{}, 1)
	rec.addRequest(RequestTag{}, 2)
	rec.addRequest(RequestTag{}, 3)

	for _, want := range []int{1, 2, 3} {
		entry, ok := rec.popFront()
		if !ok || entry.req != want {
			t.Fatalf("expected %d, got %v (ok=%v)", want, entry.req, ok)
		}
	}
	if _, ok := rec.popFront(); ok {
		t.Fatalf("expected popFront on empty record to report ok=false")
	}
}

func TestClientRecord_UpdateReqTag_SkipsPinnedFields(t *testing.T) {
	rec := newClientRecord[string, int]("c", 0, NewClientInfo(1, 1, 1, ClassReservation), 0)
	rec.prevTag = RequestTag{Reservation: 5, Proportion: 5, Limit: 5, Arrival: 0}

	rec.updateReqTag(RequestTag{Reservation: posInf, Proportion: 9, Limit: negInf, Arrival: 3, Ready: true})

	if rec.prevTag.Reservation != 5 {
		t.Fatalf("expected +inf reservation to leave prev_tag.Reservation untouched, got %v", rec.prevTag.Reservation)
	}
	if rec.prevTag.Proportion != 9 {
		t.Fatalf("expected unpinned proportion to update, got %v", rec.prevTag.Proportion)
	}
	if rec.prevTag.Limit != 5 {
		t.Fatalf("expected -inf limit to leave prev_tag.Limit untouched, got %v", rec.prevTag.Limit)
	}
	if rec.prevTag.Arrival != 3 || !rec.prevTag.Ready {
		t.Fatalf("expected arrival and ready to always copy through, got arrival=%v ready=%v", rec.prevTag.Arrival, rec.prevTag.Ready)
	}
}

func TestClientRecord_RemoveByFilter_Forward_RemovesMatchingAndKeepsOrder(t *testing.T) {
	rec := newClientRecord[string, int]("c", 0, NewClientInfo(0, 1, 0, ClassArea), 0)
	for _, v := range []int{1, 2, 3, 4, 5} {
		rec.addRequest(RequestTag{}, v)
	}

	removed := rec.removeByFilter(func(v int) bool { return v%2 == 0 }, true)

	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	var remaining []int
	for _, p := range rec.pending {
		remaining = append(remaining, p.req)
	}
	want := []int{1, 3, 5}
	if len(remaining) != len(want) {
		t.Fatalf("expected remaining %v, got %v", want, remaining)
	}
	for i := range want {
		if remaining[i] != want[i] {
			t.Fatalf("expected remaining %v, got %v", want, remaining)
		}
	}
}

func TestClientRecord_RemoveByFilter_BackwardVisitsInReverse(t *testing.T) {
	rec := newClientRecord[string, int]("c", 0, NewClientInfo(0, 1, 0, ClassArea), 0)
	for _, v := range []int{1, 2, 3} {
		rec.addRequest(RequestTag{}, v)
	}

	var visited []int
	rec.removeByFilter(func(v int) bool { visited = append(visited, v); return false }, false)

	want := []int{3, 2, 1}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("expected backward visit order %v, got %v", want, visited)
		}
	}
	// Order of surviving entries is unaffected by traversal direction.
	if rec.pending[0].req != 1 || rec.pending[1].req != 2 || rec.pending[2].req != 3 {
		t.Fatalf("expected surviving order preserved as 1,2,3, got %v", rec.pending)
	}
}

func TestClientRecord_NextProportionTag_PrefersFrontOverPrevTag(t *testing.T) {
	rec := newClientRecord[string, int]("c", 0, NewClientInfo(0, 1, 0, ClassArea), 0)
	rec.prevTag.Proportion = 42

	if got := rec.nextProportionTag(); got != 42 {
		t.Fatalf("expected prev_tag.Proportion=42 when empty, got %v", got)
	}

	rec.addRequest(RequestTag{Proportion: 7}, 1)
	if got := rec.nextProportionTag(); got != 7 {
		t.Fatalf("expected front tag's Proportion=7 once backlogged, got %v", got)
	}
}
