package schedule

import (
	"fmt"
	"strconv"
	"time"
)

// Frequency is the kind of schedule picked in the wizard.
type Frequency string

const (
	Weekly  Frequency = "Weekly"
	Monthly Frequency = "Monthly"
	Custom  Frequency = "Custom"
)

// TimeOfDay is an optional UTC time override.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// String renders the override as zero-padded 24-hour HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Choice collects the wizard answers needed to build an Expression.
// Only the field matching Frequency is read.
type Choice struct {
	Frequency  Frequency
	Weekday    time.Weekday
	DayOfMonth int
	Raw        string
	Time       *TimeOfDay
}

// Derive converts a Choice into an Expression.
// Only custom expressions can fail, and only structurally.
func Derive(c Choice) (Expression, error) {
	var expr Expression
	switch c.Frequency {
	case Weekly:
		expr = Expression{"0", "0", Wildcard, Wildcard, strconv.Itoa(int(c.Weekday))}
	case Monthly:
		expr = Expression{"0", "0", strconv.Itoa(c.DayOfMonth), Wildcard, Wildcard}
	case Custom:
		parsed, err := Parse(c.Raw)
		if err != nil {
			return expr, err
		}
		expr = parsed
	default:
		return expr, fmt.Errorf("unknown frequency: %q", c.Frequency)
	}

	if c.Time != nil {
		expr = expr.WithTime(*c.Time)
	}
	return expr, nil
}

// Label is the day or date text fed to Describe.
func (c Choice) Label() string {
	switch c.Frequency {
	case Weekly:
		return c.Weekday.String()
	case Monthly:
		return strconv.Itoa(c.DayOfMonth)
	default:
		return c.Raw
	}
}
