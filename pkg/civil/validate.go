package civil

import "time"

// IsValid reports whether dt denotes a real calendar date and wall-clock
// time. The day bound is month- and leap-aware, so February 29 is valid only
// in leap years. The DST hint is not checked; any hint value is acceptable.
func (dt DateTime) IsValid() bool {
	switch {
	case dt.Year == 0:
		return false
	case dt.Month < time.January || dt.Month > time.December:
		return false
	case dt.Day < 1 || dt.Day > DaysInMonth(dt.Month, IsLeapYear(dt.Year)):
		return false
	case dt.Hour < 0 || dt.Hour >= hoursPerDay:
		return false
	case dt.Minute < 0 || dt.Minute >= minutesPerHour:
		return false
	case dt.Second < 0 || dt.Second >= secondsPerMinute:
		return false
	}
	return true
}
