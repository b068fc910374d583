// Package civil provides a broken-down civil date-time record and
// calendar-aware arithmetic over it, independent of any platform timestamp
// encoding.
//
// A DateTime is a transient, caller-owned value. Construction does not
// enforce invariants; IsValid does. The arithmetic family (AddDays,
// SubHours, ...) mutates the receiver in place and returns the same pointer,
// and never validates its input: validate before mutating or converting.
//
// The calendar is proleptic Gregorian without a year zero: Year runs
// ..., -2, -1, 1, 2, ... and arithmetic crossing the boundary skips from -1
// directly to 1 (and back). Year 0 doubles as the "unset" sentinel and is
// always invalid.
package civil

import (
	"fmt"
	"time"
)

// DSTHint advises a platform engine's forward conversion when a wall-clock
// time is ambiguous (fall-back transitions). Calendar arithmetic, comparison,
// and validation never read it.
type DSTHint int

// DST hint states. The zero value leaves the decision to the platform.
const (
	DSTUnknown DSTHint = iota
	DSTInactive
	DSTActive
)

// String returns the hint's name for diagnostics.
func (h DSTHint) String() string {
	switch h {
	case DSTInactive:
		return "inactive"
	case DSTActive:
		return "active"
	default:
		return "unknown"
	}
}

// DateTime is a civil calendar date and wall-clock time.
//
// Invariants (enforced by IsValid, not by construction): Year != 0,
// January <= Month <= December, 1 <= Day <= DaysInMonth(Month,
// IsLeapYear(Year)), 0 <= Hour <= 23, 0 <= Minute <= 59, 0 <= Second <= 59.
// A Second of 60 is always invalid; leap seconds are unsupported.
type DateTime struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int

	// DST is consumed only by platform engines resolving ambiguous local
	// times. It never participates in arithmetic or ordering.
	DST DSTHint
}

// Date assembles a DateTime from its fields with an unknown DST hint. It is
// a convenience mirror of time.Date's field order and performs no
// normalization or validation.
func Date(year int, month time.Month, day, hour, minute, second int) DateTime {
	return DateTime{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
	}
}

// FromTime snapshots the civil fields of t in t's own location, with the DST
// hint taken from the zone's state at t. Note the time package numbers years
// astronomically: a t in its year zero yields an invalid record, since the
// civil calendar here has no year zero.
func FromTime(t time.Time) DateTime {
	hint := DSTInactive
	if t.IsDST() {
		hint = DSTActive
	}
	return DateTime{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
		DST:    hint,
	}
}

// String renders a fixed ISO-8601-like form for diagnostics, e.g.
// "2030-01-02T12:00:00". Negative years carry a leading minus. This is not a
// locale-aware formatter and takes no part in parsing.
func (dt DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		dt.Year, int(dt.Month), dt.Day, dt.Hour, dt.Minute, dt.Second)
}
