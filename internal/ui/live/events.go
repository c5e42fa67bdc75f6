// Package live is a read-only Bubble Tea dashboard subscribed to a
// dmclock.Observer: one table row per client, refreshed from periodic
// dmclock.Queue.Snapshot polls, plus a scrolling line of the most recent
// dispatch/window/idle/erase events.
package live

import "dmclockd/pkg/dmclock"

// EventKind mirrors dmclock.EventKind for the UI's own event log, kept
// as a distinct type so the UI package never has to know the ID type
// parameter dmclock.Event[ID] carries.
type EventKind int

const (
	EventDispatched EventKind = iota
	EventWindowRollover
	EventIdle
	EventErased
)

// Event is a UI-facing, string-keyed rendering of a dmclock.Event.
type Event struct {
	Kind     EventKind
	ClientID string
	Phase    string
}

func translateKind(k dmclock.EventKind) EventKind {
	switch k {
	case dmclock.EventWindowRollover:
		return EventWindowRollover
	case dmclock.EventIdle:
		return EventIdle
	case dmclock.EventErased:
		return EventErased
	default:
		return EventDispatched
	}
}

func (k EventKind) String() string {
	switch k {
	case EventWindowRollover:
		return "window-rollover"
	case EventIdle:
		return "idle"
	case EventErased:
		return "erased"
	default:
		return "dispatched"
	}
}
