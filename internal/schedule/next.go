package schedule

import (
	"time"

	"github.com/robfig/cron/v3"
)

// NextRun computes the next UTC fire time after now.
//
// Weekly expressions never fire today: a target equal to the current
// weekday rolls over to next week. Monthly expressions advance to the next
// month when today's date is on or after the target, and day overflow
// (31 in a 30-day month) follows time.Date normalisation.
//
// Other expressions go through the standard cron parser; ok is false when
// it rejects them.
func NextRun(expr Expression, now time.Time) (time.Time, bool) {
	now = now.UTC()

	if hour, minute, ok := expr.clock(); ok {
		if day, ok := expr.weekly(); ok {
			return nextWeekly(now, day, hour, minute), true
		}
		if date, ok := expr.monthly(); ok {
			return nextMonthly(now, date, hour, minute), true
		}
	}

	sched, err := cron.ParseStandard(expr.String())
	if err != nil {
		return time.Time{}, false
	}
	next := sched.Next(now)
	if next.IsZero() {
		return time.Time{}, false
	}
	return next.UTC(), true
}

func nextWeekly(now time.Time, target, hour, minute int) time.Time {
	daysUntil := target - int(now.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return time.Date(now.Year(), now.Month(), now.Day()+daysUntil, hour, minute, 0, 0, time.UTC)
}

func nextMonthly(now time.Time, target, hour, minute int) time.Time {
	base := now
	if now.Day() >= target {
		// Month first, keeping today's day, then the target date.
		base = time.Date(now.Year(), now.Month()+1, now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return time.Date(base.Year(), base.Month(), target, hour, minute, 0, 0, time.UTC)
}

// FormatRun renders a fire time as RFC1123 in UTC.
func FormatRun(t time.Time) string {
	return t.UTC().Format(time.RFC1123)
}
