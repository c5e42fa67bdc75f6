package live

import (
	"fmt"
	"strconv"
)

// formatEvent renders one scheduler event as a single log-style line.
func formatEvent(event Event) string {
	return fmt.Sprintf("%s: %s (%s)", event.Kind, event.ClientID, event.Phase)
}

// formatBool renders a boolean as a short flag column value.
func formatBool(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}

// formatFloat renders a float with two decimal places, or "-" for zero.
func formatFloat(v float64) string {
	if v == 0 {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// formatCount renders a counter, or "-" for zero.
func formatCount(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}
