package engine

import (
	"fmt"
	"time"

	"tempus/pkg/civil"
	"tempus/pkg/platform/sentinel"
)

// Local converts through the Go time package against a fixed location. The
// zero location is the process's local zone, mirroring how the platform's
// own conversion routines consult the environment.
//
// Local is safe for concurrent use. Serialized exists for engine
// implementations that are not.
type Local struct {
	loc *time.Location
}

var _ Engine = (*Local)(nil)

type LocalOption func(*Local)

// WithLocation pins the engine's forward-conversion location. Nil locations
// are ignored.
func WithLocation(loc *time.Location) LocalOption {
	return func(e *Local) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// NewLocal returns an engine interpreting records in the process's local
// zone unless WithLocation overrides it.
func NewLocal(opts ...LocalOption) *Local {
	e := &Local{loc: time.Local}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Timestamp interprets dt in the engine's location and returns the platform
// instant. Records that fail civil validation are rejected with
// sentinel.ErrInvalidDateTime. Wall times erased by a zone transition are
// normalized the way the platform normalizes them. When dt carries a DST
// hint and the wall time names two instants, the hint picks between them.
// Years beyond what the timestamp encoding can hold are rejected with
// sentinel.ErrNotRepresentable.
func (e *Local) Timestamp(dt civil.DateTime) (Timestamp, error) {
	if !dt.IsValid() {
		return 0, fmt.Errorf("timestamp of %s: %w", dt, sentinel.ErrInvalidDateTime)
	}

	t := time.Date(platformYear(dt.Year), dt.Month, dt.Day, dt.Hour, dt.Minute, dt.Second, 0, e.loc)

	if want, ok := hintWantsDST(dt.DST); ok && t.IsDST() != want {
		for _, d := range []time.Duration{-time.Hour, time.Hour} {
			alt := t.Add(d)
			if alt.IsDST() == want && sameWallClock(alt, dt) {
				t = alt
				break
			}
		}
	}

	// time.Date wraps silently once the year overruns the instant's range.
	// A wrapped conversion lands hundreds of billions of years from the
	// request; zone normalization never moves the year by more than one.
	py := platformYear(dt.Year)
	if y := t.Year(); y-py > 1 || py-y > 1 {
		return 0, fmt.Errorf("timestamp of %s: %w", dt, sentinel.ErrNotRepresentable)
	}
	return Timestamp(t.Unix()), nil
}

// UTC decomposes ts into the civil fields a UTC wall clock shows for it. The
// DST hint on the result is always inactive; UTC has no daylight saving.
func (e *Local) UTC(ts Timestamp) (civil.DateTime, error) {
	dt := civil.FromTime(time.Unix(int64(ts), 0).UTC())
	dt.Year = recordYear(dt.Year)
	return dt, nil
}

// hintWantsDST translates an advisory hint into a concrete target, with ok
// false when the record leaves the choice to the platform.
func hintWantsDST(h civil.DSTHint) (want, ok bool) {
	switch h {
	case civil.DSTActive:
		return true, true
	case civil.DSTInactive:
		return false, true
	default:
		return false, false
	}
}

// sameWallClock reports whether t reads as dt's wall fields in t's location.
func sameWallClock(t time.Time, dt civil.DateTime) bool {
	return t.Year() == platformYear(dt.Year) &&
		t.Month() == dt.Month &&
		t.Day() == dt.Day &&
		t.Hour() == dt.Hour &&
		t.Minute() == dt.Minute &&
		t.Second() == dt.Second
}

// platformYear maps a record year onto the time package's astronomical
// numbering, which has a year zero where the civil calendar does not.
func platformYear(y int) int {
	if y < 0 {
		return y + 1
	}
	return y
}

// recordYear is the inverse of platformYear.
func recordYear(y int) int {
	if y <= 0 {
		return y - 1
	}
	return y
}
