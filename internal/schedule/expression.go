// Package schedule derives, describes and evaluates the 5-field cron
// expressions written into the generated workflow.
//
// Everything here is pure: no I/O, no clock reads. Callers pass "now"
// explicitly so results are deterministic.
package schedule

import (
	"strconv"
	"strings"
)

// Wildcard is the "any value" marker of a cron field.
const Wildcard = "*"

// FieldCount is the number of fields in a standard cron expression.
const FieldCount = 5

// Field positions inside an Expression.
const (
	FieldMinute = iota
	FieldHour
	FieldDayOfMonth
	FieldMonth
	FieldDayOfWeek
)

// Expression is a cron expression split into
// minute, hour, day-of-month, month and day-of-week.
type Expression [FieldCount]string

// Parse splits s on whitespace and requires exactly five tokens.
// Field values are not checked for range.
func Parse(s string) (Expression, error) {
	var expr Expression
	if err := ValidateCustom(s); err != nil {
		return expr, err
	}
	copy(expr[:], strings.Fields(s))
	return expr, nil
}

// String joins the fields with single spaces.
func (e Expression) String() string {
	return strings.Join(e[:], " ")
}

func (e Expression) Minute() string     { return e[FieldMinute] }
func (e Expression) Hour() string       { return e[FieldHour] }
func (e Expression) DayOfMonth() string { return e[FieldDayOfMonth] }
func (e Expression) Month() string      { return e[FieldMonth] }
func (e Expression) DayOfWeek() string  { return e[FieldDayOfWeek] }

// WithTime returns a copy with the minute and hour fields replaced.
func (e Expression) WithTime(t TimeOfDay) Expression {
	e[FieldMinute] = strconv.Itoa(t.Minute)
	e[FieldHour] = strconv.Itoa(t.Hour)
	return e
}

// weekly reports the concrete day-of-week of a weekly expression.
func (e Expression) weekly() (int, bool) {
	if e.DayOfWeek() == Wildcard || e.DayOfMonth() != Wildcard || e.Month() != Wildcard {
		return 0, false
	}
	day, err := strconv.Atoi(e.DayOfWeek())
	if err != nil {
		return 0, false
	}
	return day, true
}

// monthly reports the concrete day-of-month of a monthly expression.
func (e Expression) monthly() (int, bool) {
	if e.DayOfWeek() != Wildcard || e.Month() != Wildcard {
		return 0, false
	}
	date, err := strconv.Atoi(e.DayOfMonth())
	if err != nil {
		return 0, false
	}
	return date, true
}

// clock returns hour and minute as integers. ok is false when either
// field is not a plain number (ranges, steps, lists, wildcards).
func (e Expression) clock() (hour, minute int, ok bool) {
	h, err := strconv.Atoi(e.Hour())
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(e.Minute())
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}
