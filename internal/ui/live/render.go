package live

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	summaryStyle = lipgloss.NewStyle().Faint(true)
)

func renderHeader(state State, noColor bool) string {
	text := fmt.Sprintf("dmclockd  clients=%d  dispatched=%d  idled=%d  erased=%d",
		len(state.Rows), state.Dispatched, state.Idled, state.Erased)
	if noColor {
		return text
	}
	return headerStyle.Render(text)
}

func renderFooter(state State, noColor bool) string {
	if state.LastEvent == "" {
		return ""
	}
	if noColor {
		return state.LastEvent
	}
	return summaryStyle.Render(state.LastEvent)
}
