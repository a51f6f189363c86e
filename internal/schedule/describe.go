package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// MidnightAnchor is the literal replaced by ApplyTime.
const MidnightAnchor = "12:00 AM"

// Describe renders a human sentence for the schedule.
// label is the weekday name for Weekly and the date number for Monthly.
func Describe(expr Expression, freq Frequency, label string) string {
	switch freq {
	case Weekly:
		return fmt.Sprintf("Every %s at %s UTC", label, MidnightAnchor)
	case Monthly:
		n, err := strconv.Atoi(strings.TrimSpace(label))
		if err != nil {
			n, _ = strconv.Atoi(expr.DayOfMonth())
		}
		return fmt.Sprintf("Every %d%s of the month at %s UTC", n, Ordinal(n), MidnightAnchor)
	default:
		return "Custom: " + expr.String()
	}
}

// Ordinal returns the English suffix for n: st, nd, rd or th.
func Ordinal(n int) string {
	if n >= 11 && n <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// ApplyTime swaps the first MidnightAnchor in desc for the override.
// Plain text substitution: descriptions without the anchor are returned unchanged.
func ApplyTime(desc string, t TimeOfDay) string {
	return strings.Replace(desc, MidnightAnchor, t.String(), 1)
}
