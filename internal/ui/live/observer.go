package live

import (
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"dmclockd/pkg/dmclock"
)

// Controller runs the live dashboard and implements dmclock.Observer.
type Controller struct {
	events    chan Event
	program   *tea.Program
	done      chan struct{}
	closeOnce sync.Once
}

// Start launches a live dashboard controller writing to stdout, polling
// queue for its client table on every tick. The dashboard only ever
// displays string client IDs; Req is left generic so it fits whichever
// payload type the caller's Queue was built with.
func Start[Req any](stdout io.Writer, queue *dmclock.Queue[string, Req], opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan Event, 256)
	model := NewModel(events, queue.Snapshot, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	c := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
	}
	queue.SetObserver(c)
	go func() {
		_, _ = program.Run()
		close(c.done)
	}()
	return c
}

// Close signals the dashboard to stop.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() { close(c.events) })
}

// Wait blocks until the dashboard has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}

// Notify implements dmclock.Observer[string].
func (c *Controller) Notify(event dmclock.Event[string]) {
	c.send(Event{
		Kind:     translateKind(event.Kind),
		ClientID: event.ClientID,
		Phase:    fmt.Sprint(event.Phase),
	})
}

func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	select {
	case c.events <- event:
	default:
	}
}
