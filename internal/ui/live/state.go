package live

import "dmclockd/pkg/dmclock"

// ClientRow holds one client's rendered scheduling state.
type ClientRow struct {
	ID            string
	Class         string
	Pending       int
	Idle          bool
	R0Counter     int
	DeltarCounter int
	BCounter      int
	BeCounter     int
	BreakCounter  int
	RCompensation float64
	Resource      float64
}

// State captures the live UI state for a running Queue.
type State struct {
	Rows      []ClientRow
	LastEvent string
	Dispatched int
	Idled      int
	Erased     int
}

// rowFromSnapshot converts one dmclock.ClientSnapshot into a display row.
func rowFromSnapshot(s dmclock.ClientSnapshot[string]) ClientRow {
	return ClientRow{
		ID:            s.ID,
		Class:         s.Class.String(),
		Pending:       s.Pending,
		Idle:          s.Idle,
		R0Counter:     s.R0Counter,
		DeltarCounter: s.DeltarCounter,
		BCounter:      s.BCounter,
		BeCounter:     s.BeCounter,
		BreakCounter:  s.BreakCounter,
		RCompensation: s.RCompensation,
		Resource:      s.Resource,
	}
}

// applySnapshot replaces the row set from a fresh poll.
func applySnapshot(state State, snapshot []dmclock.ClientSnapshot[string]) State {
	rows := make([]ClientRow, 0, len(snapshot))
	for _, s := range snapshot {
		rows = append(rows, rowFromSnapshot(s))
	}
	state.Rows = rows
	return state
}

// applyEvent folds one scheduler event into the running counters and the
// "last event" line the footer shows.
func applyEvent(state State, event Event) State {
	switch event.Kind {
	case EventDispatched:
		state.Dispatched++
	case EventIdle:
		state.Idled++
	case EventErased:
		state.Erased++
	}
	state.LastEvent = formatEvent(event)
	return state
}
