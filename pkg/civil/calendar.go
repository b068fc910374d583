package civil

import "time"

const (
	secondsPerMinute = 60
	minutesPerHour   = 60
	hoursPerDay      = 24
	secondsPerDay    = secondsPerMinute * minutesPerHour * hoursPerDay
)

// monthLengths holds non-leap month lengths, indexed by time.Month.
var monthLengths = [...]int{
	time.January:   31,
	time.February:  28,
	time.March:     31,
	time.April:     30,
	time.May:       31,
	time.June:      30,
	time.July:      31,
	time.August:    31,
	time.September: 30,
	time.October:   31,
	time.November:  30,
	time.December:  31,
}

// IsLeapYear reports whether year is a Gregorian leap year: divisible by 4
// and either not divisible by 100 or divisible by 400. The rule is applied
// to the year number as stored, including negative (BC) years.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month, with leap selecting the
// 29-day February. Months outside January..December yield 0.
func DaysInMonth(month time.Month, leap bool) int {
	if month < time.January || month > time.December {
		return 0
	}
	if month == time.February && leap {
		return 29
	}
	return monthLengths[month]
}

// nextYear advances y by one calendar year, skipping the nonexistent year
// zero.
func nextYear(y int) int {
	if y == -1 {
		return 1
	}
	return y + 1
}

// prevYear moves y back one calendar year, skipping the nonexistent year
// zero.
func prevYear(y int) int {
	if y == 1 {
		return -1
	}
	return y - 1
}
