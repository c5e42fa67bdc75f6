package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "CLIENT", Width: 14},
		{Title: "CLASS", Width: 11},
		{Title: "PENDING", Width: 7},
		{Title: "IDLE", Width: 4},
		{Title: "R0", Width: 5},
		{Title: "DELTAR", Width: 6},
		{Title: "B", Width: 5},
		{Title: "BE", Width: 5},
		{Title: "BREAK", Width: 5},
		{Title: "R_COMP", Width: 7},
		{Title: "RESOURCE", Width: 8},
	}
}

// tableStyles returns table styles for the dashboard.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("242"))
	return styles
}

// rowsForState converts UI state into table rows.
func rowsForState(state State) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, r := range state.Rows {
		rows = append(rows, table.Row{
			r.ID,
			r.Class,
			formatCount(r.Pending),
			formatBool(r.Idle),
			formatCount(r.R0Counter),
			formatCount(r.DeltarCounter),
			formatCount(r.BCounter),
			formatCount(r.BeCounter),
			formatCount(r.BreakCounter),
			formatFloat(r.RCompensation),
			formatFloat(r.Resource),
		})
	}
	return rows
}
