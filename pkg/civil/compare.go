package civil

import "cmp"

// Compare orders dt against other lexicographically over (Year, Month, Day,
// Hour, Minute, Second) and returns -1 when dt is earlier, +1 when later,
// and 0 when all six fields are equal. DST hints are ignored. Year ordering
// is plain integer ordering, so BC years sort before AD years.
func (dt DateTime) Compare(other DateTime) int {
	if c := cmp.Compare(dt.Year, other.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(dt.Month, other.Month); c != 0 {
		return c
	}
	if c := cmp.Compare(dt.Day, other.Day); c != 0 {
		return c
	}
	if c := cmp.Compare(dt.Hour, other.Hour); c != 0 {
		return c
	}
	if c := cmp.Compare(dt.Minute, other.Minute); c != 0 {
		return c
	}
	return cmp.Compare(dt.Second, other.Second)
}

// Equal reports whether dt and other name the same instant field-for-field,
// DST hints aside.
func (dt DateTime) Equal(other DateTime) bool {
	return dt.Compare(other) == 0
}

// IntradaySeconds returns the signed wall-clock seconds from dt to other,
// positive when other is later. Only the time-of-day fields enter the
// computation; the date fields contribute solely through ordering, which
// decides the direction of a midnight wrap. When the raw time-of-day
// difference disagrees in sign with the date ordering, one day's worth of
// seconds is added or removed, so 23:00 to 01:00 the next day is +7200
// rather than -79200.
//
// The result is only meaningful when the two records lie within 24 hours of
// each other. Records further apart produce a deterministic wrapped value
// with no calendar interpretation.
func (dt DateTime) IntradaySeconds(other DateTime) int {
	c := dt.Compare(other)
	if c == 0 {
		return 0
	}

	diff := (other.Hour-dt.Hour)*secondsPerMinute*minutesPerHour +
		(other.Minute-dt.Minute)*secondsPerMinute +
		(other.Second - dt.Second)

	switch {
	case c > 0 && diff > 0:
		diff -= secondsPerDay
	case c < 0 && diff < 0:
		diff += secondsPerDay
	}
	return diff
}
