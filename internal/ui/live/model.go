package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dmclockd/pkg/dmclock"
)

// Model renders the live dashboard using Bubble Tea.
type Model struct {
	state        State
	table        table.Model
	events       <-chan Event
	poll         func() []dmclock.ClientSnapshot[string]
	tickInterval time.Duration
	noColor      bool
}

// Options configures the live UI model.
type Options struct {
	NoColor      bool
	TickInterval time.Duration
}

// NewModel constructs a live UI model. poll is called on every tick to
// refresh the table from the engine's current Snapshot; events carries
// the scheduler's dispatch/window/idle/erase log.
func NewModel(events <-chan Event, poll func() []dmclock.ClientSnapshot[string], opts Options) Model {
	tickInterval := opts.TickInterval
	if tickInterval <= 0 {
		tickInterval = 200 * time.Millisecond
	}
	t := table.New(
		table.WithColumns(defaultColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		table:        t,
		events:       events,
		poll:         poll,
		tickInterval: tickInterval,
		noColor:      opts.NoColor,
	}
}

// Init starts ticking and waits for the first event.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), tick(m.tickInterval))
}

// Update consumes UI events and timer ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		m.table.SetHeight(max(typed.Height-4, 1))
		return m, nil
	case tea.KeyMsg:
		if typed.String() == "q" || typed.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case EventMsg:
		m.state = applyEvent(m.state, typed.Event)
		return m, waitForEvent(m.events)
	case tickMsg:
		if m.poll != nil {
			m.state = applySnapshot(m.state, m.poll())
		}
		m.table.SetRows(rowsForState(m.state))
		return m, tick(m.tickInterval)
	}
	return m, nil
}

// View renders the live UI.
func (m Model) View() string {
	header := renderHeader(m.state, m.noColor)
	tableView := m.table.View()
	footer := renderFooter(m.state, m.noColor)
	return lipgloss.JoinVertical(lipgloss.Left, header, tableView, footer)
}

// EventMsg wraps a UI event for Bubble Tea.
type EventMsg struct {
	Event Event
}

type tickMsg time.Time

func waitForEvent(events <-chan Event) tea.Cmd {
	return func() tea.Msg {
		if events == nil {
			return nil
		}
		event, ok := <-events
		if !ok {
			return tea.Quit()
		}
		return EventMsg{Event: event}
	}
}

func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
