package reconcile

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"tempus/pkg/civil"
	"tempus/pkg/reconcile/metrics"
)

// Calibration units.
const (
	unitDay    = "day"
	unitHour   = "hour"
	unitSecond = "second"
)

// Calibrator measures how the platform counts time instead of assuming it.
// Nothing guarantees a platform timestamp ticks in seconds, so each unit is
// measured by converting a fixed datum twice, one unit apart, and taking the
// difference of the two timestamps.
//
// The datum is noon on January 2 1930: an ordinary date comfortably clear of
// zone transitions, so bumping it by a day, an hour, or a second never
// crosses calendar weirdness.
//
// Measurements are taken once per unit and cached. Concurrent first calls
// collapse into a single engine round trip. A Calibrator is safe for
// concurrent use as long as its engine is.
type Calibrator struct {
	eng     Engine
	metrics *metrics.Metrics

	group singleflight.Group

	mu    sync.RWMutex
	units map[string]int64
}

type CalibratorOption func(*Calibrator)

func WithCalibratorMetrics(m *metrics.Metrics) CalibratorOption {
	return func(c *Calibrator) {
		c.metrics = m
	}
}

func NewCalibrator(eng Engine, opts ...CalibratorOption) (*Calibrator, error) {
	if eng == nil {
		return nil, fmt.Errorf("engine is required")
	}

	c := &Calibrator{
		eng:   eng,
		units: make(map[string]int64),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// The bumps adjust the datum's field directly: one unit from noon on an
// ordinary day never carries.

// DayUnits returns the platform's representation of one day.
func (c *Calibrator) DayUnits() (int64, error) {
	return c.measure(unitDay, func(dt *civil.DateTime) { dt.Day++ })
}

// HourUnits returns the platform's representation of one hour.
func (c *Calibrator) HourUnits() (int64, error) {
	return c.measure(unitHour, func(dt *civil.DateTime) { dt.Hour++ })
}

// SecondUnits returns the platform's representation of one second.
func (c *Calibrator) SecondUnits() (int64, error) {
	return c.measure(unitSecond, func(dt *civil.DateTime) { dt.Second++ })
}

func (c *Calibrator) measure(unit string, bump func(*civil.DateTime)) (int64, error) {
	c.mu.RLock()
	v, ok := c.units[unit]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	res, err, _ := c.group.Do(unit, func() (any, error) {
		c.mu.RLock()
		v, ok := c.units[unit]
		c.mu.RUnlock()
		if ok {
			return v, nil
		}

		datum := civil.Date(1930, time.January, 2, 12, 0, 0)
		first, err := c.eng.Timestamp(datum)
		if err != nil {
			return nil, fmt.Errorf("calibrate %s: %w", unit, err)
		}

		bump(&datum)
		second, err := c.eng.Timestamp(datum)
		if err != nil {
			return nil, fmt.Errorf("calibrate %s: %w", unit, err)
		}

		units := int64(second - first)
		c.metrics.IncrementCalibrationMeasurement(unit)

		c.mu.Lock()
		c.units[unit] = units
		c.mu.Unlock()
		return units, nil
	})
	if err != nil {
		return 0, err
	}
	return res.(int64), nil
}
