package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValidationError describes input rejected at the prompt boundary.
// It is always recoverable: the caller asks again.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validation messages shown to the user verbatim.
const (
	msgCustomFields = "Cron expression must have exactly 5 parts (minute hour day month day-of-week)"
	msgDayOfMonth   = "Please enter a number between 1 and 31"
	msgHour         = "Must be between 0 and 23"
	msgMinute       = "Must be between 0 and 59"
	msgWeekday      = "Unknown day of the week"
)

// ValidateCustom checks only the structure of a raw expression:
// exactly five whitespace-separated tokens, whatever they contain.
func ValidateCustom(s string) error {
	if len(strings.Fields(s)) != FieldCount {
		return &ValidationError{Field: "cron", Value: s, Reason: msgCustomFields}
	}
	return nil
}

// ParseDayOfMonth accepts 1..31. Short months are not considered.
func ParseDayOfMonth(s string) (int, error) {
	return parseRange("date", s, 1, 31, msgDayOfMonth)
}

// ParseHour accepts 0..23.
func ParseHour(s string) (int, error) {
	return parseRange("hour", s, 0, 23, msgHour)
}

// ParseMinute accepts 0..59.
func ParseMinute(s string) (int, error) {
	return parseRange("minute", s, 0, 59, msgMinute)
}

func parseRange(field, s string, lo, hi int, reason string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < lo || n > hi {
		return 0, &ValidationError{Field: field, Value: s, Reason: reason}
	}
	return n, nil
}

// Weekdays lists day names in cron order, Sunday = 0.
var Weekdays = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

// ParseWeekday maps an English day name (case-insensitive) to its cron number.
func ParseWeekday(name string) (time.Weekday, error) {
	for _, d := range Weekdays {
		if strings.EqualFold(strings.TrimSpace(name), d.String()) {
			return d, nil
		}
	}
	return time.Sunday, &ValidationError{
		Field:  "day",
		Value:  name,
		Reason: fmt.Sprintf("%s: %q", msgWeekday, name),
	}
}
