package civil

import "time"

// The Add and Sub families mutate the receiver in place and return it so
// calls can chain. Quantities may be arbitrarily large; carries and borrows
// cascade through minutes, hours, days, months, and years, and a negative
// quantity delegates to the opposite operation. None of them validate the
// receiver: feeding an invalid record in yields an undefined record out.

// AddDays advances dt by n days, rolling months and years as needed.
func (dt *DateTime) AddDays(n int) *DateTime {
	if n < 0 {
		return dt.SubDays(-n)
	}
	for ; n > 0; n-- {
		dt.Day++
		if dt.Day > DaysInMonth(dt.Month, IsLeapYear(dt.Year)) {
			dt.Day = 1
			if dt.Month == time.December {
				dt.Month = time.January
				dt.Year = nextYear(dt.Year)
			} else {
				dt.Month++
			}
		}
	}
	return dt
}

// SubDays moves dt back by n days, rolling months and years as needed.
func (dt *DateTime) SubDays(n int) *DateTime {
	if n < 0 {
		return dt.AddDays(-n)
	}
	for ; n > 0; n-- {
		dt.Day--
		if dt.Day < 1 {
			if dt.Month == time.January {
				dt.Month = time.December
				dt.Year = prevYear(dt.Year)
			} else {
				dt.Month--
			}
			dt.Day = DaysInMonth(dt.Month, IsLeapYear(dt.Year))
		}
	}
	return dt
}

// AddHours advances dt by n hours, carrying whole days into AddDays and
// leaving the remainder in the hour field.
func (dt *DateTime) AddHours(n int) *DateTime {
	if n < 0 {
		return dt.SubHours(-n)
	}
	if n >= hoursPerDay || n >= hoursPerDay-dt.Hour {
		days := n / hoursPerDay
		n -= days * hoursPerDay
		if n >= hoursPerDay-dt.Hour {
			days++
			dt.Hour += n - hoursPerDay
			n = 0
		}
		dt.AddDays(days)
	}
	dt.Hour += n
	return dt
}

// SubHours moves dt back by n hours, borrowing whole days from SubDays.
func (dt *DateTime) SubHours(n int) *DateTime {
	if n < 0 {
		return dt.AddHours(-n)
	}
	if n >= hoursPerDay || n > dt.Hour {
		days := n / hoursPerDay
		n -= days * hoursPerDay
		if n > dt.Hour {
			days++
			n -= dt.Hour
			dt.Hour = hoursPerDay
		}
		dt.SubDays(days)
	}
	dt.Hour -= n
	return dt
}

// AddMinutes advances dt by n minutes, carrying whole hours into AddHours.
func (dt *DateTime) AddMinutes(n int) *DateTime {
	if n < 0 {
		return dt.SubMinutes(-n)
	}
	if n >= minutesPerHour || n >= minutesPerHour-dt.Minute {
		hours := n / minutesPerHour
		n -= hours * minutesPerHour
		if n >= minutesPerHour-dt.Minute {
			hours++
			dt.Minute += n - minutesPerHour
			n = 0
		}
		dt.AddHours(hours)
	}
	dt.Minute += n
	return dt
}

// SubMinutes moves dt back by n minutes, borrowing whole hours from
// SubHours.
func (dt *DateTime) SubMinutes(n int) *DateTime {
	if n < 0 {
		return dt.AddMinutes(-n)
	}
	if n >= minutesPerHour || n > dt.Minute {
		hours := n / minutesPerHour
		n -= hours * minutesPerHour
		if n > dt.Minute {
			hours++
			n -= dt.Minute
			dt.Minute = minutesPerHour
		}
		dt.SubHours(hours)
	}
	dt.Minute -= n
	return dt
}

// AddSeconds advances dt by n seconds, carrying whole minutes into
// AddMinutes.
func (dt *DateTime) AddSeconds(n int) *DateTime {
	if n < 0 {
		return dt.SubSeconds(-n)
	}
	if n >= secondsPerMinute || n >= secondsPerMinute-dt.Second {
		minutes := n / secondsPerMinute
		n -= minutes * secondsPerMinute
		if n >= secondsPerMinute-dt.Second {
			minutes++
			dt.Second += n - secondsPerMinute
			n = 0
		}
		dt.AddMinutes(minutes)
	}
	dt.Second += n
	return dt
}

// SubSeconds moves dt back by n seconds, borrowing whole minutes from
// SubMinutes.
func (dt *DateTime) SubSeconds(n int) *DateTime {
	if n < 0 {
		return dt.AddSeconds(-n)
	}
	if n >= secondsPerMinute || n > dt.Second {
		minutes := n / secondsPerMinute
		n -= minutes * secondsPerMinute
		if n > dt.Second {
			minutes++
			n -= dt.Second
			dt.Second = secondsPerMinute
		}
		dt.SubMinutes(minutes)
	}
	dt.Second -= n
	return dt
}
