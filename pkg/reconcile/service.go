// Package reconcile derives trustworthy UTC timestamps from a platform
// engine whose forward conversion thinks in local time. A conversion is
// accepted only when decomposing the produced timestamp yields exactly the
// requested UTC fields; anything less is corrected or refused.
package reconcile

import (
	"fmt"
	"log/slog"
	"time"

	"tempus/pkg/civil"
	"tempus/pkg/platform/engine"
	"tempus/pkg/platform/sentinel"
	"tempus/pkg/reconcile/metrics"
)

// Engine is the platform conversion dependency of the reconciliation
// service. pkg/platform/engine provides implementations.
type Engine interface {
	Timestamp(dt civil.DateTime) (engine.Timestamp, error)
	UTC(ts engine.Timestamp) (civil.DateTime, error)
}

// Correction stages reported to metrics.
const (
	stageOffset        = "offset"
	stageProbeForward  = "probe_forward"
	stageProbeBackward = "probe_backward"
)

// Failure reasons reported to metrics.
const (
	reasonInvalid        = "invalid"
	reasonEngineFault    = "engine_fault"
	reasonUnreconcilable = "unreconcilable"
)

type Service struct {
	eng        Engine
	calibrator *Calibrator
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithCalibrator shares a calibrator between services running against the
// same engine.
func WithCalibrator(c *Calibrator) Option {
	return func(s *Service) {
		s.calibrator = c
	}
}

func New(eng Engine, opts ...Option) (*Service, error) {
	if eng == nil {
		return nil, fmt.Errorf("engine is required")
	}

	svc := &Service{eng: eng}
	for _, opt := range opts {
		opt(svc)
	}

	if svc.calibrator == nil {
		c, err := NewCalibrator(eng, WithCalibratorMetrics(svc.metrics))
		if err != nil {
			return nil, err
		}
		svc.calibrator = c
	}

	return svc, nil
}

// Calibrator returns the unit calibrator the service reconciles with.
func (s *Service) Calibrator() *Calibrator {
	return s.calibrator
}

// UTCTimestamp converts a UTC civil record into the platform timestamp that
// decomposes back to exactly those fields.
//
// The engine's forward conversion interprets the record in its own location,
// so the first timestamp is only approximate. The service measures how far
// that approximation decomposes from the requested fields, shifts it by the
// measured amount in calibrated platform seconds, and verifies again. A
// residual disagreement, such as a leap second landing between the two
// instants, is probed one platform second either side before the conversion
// is refused with sentinel.ErrUnreconcilable.
func (s *Service) UTCTimestamp(dt civil.DateTime) (engine.Timestamp, error) {
	start := time.Now()
	ts, err := s.utcTimestamp(dt)
	if err != nil {
		return 0, err
	}
	s.metrics.IncrementConversions()
	s.metrics.ObserveConvertLatency(time.Since(start))
	return ts, nil
}

func (s *Service) utcTimestamp(dt civil.DateTime) (engine.Timestamp, error) {
	if !dt.IsValid() {
		s.metrics.IncrementFailure(reasonInvalid)
		return 0, fmt.Errorf("utc timestamp of %s: %w", dt, sentinel.ErrInvalidDateTime)
	}

	ts, err := s.eng.Timestamp(dt)
	if err != nil {
		s.metrics.IncrementFailure(reasonEngineFault)
		return 0, fmt.Errorf("utc timestamp of %s: %w", dt, err)
	}

	diff, err := s.SecondsOff(ts, dt)
	if err != nil {
		s.metrics.IncrementFailure(reasonEngineFault)
		return 0, fmt.Errorf("utc timestamp of %s: %w", dt, err)
	}
	if diff == 0 {
		return ts, nil
	}

	oneSec, err := s.calibrator.SecondUnits()
	if err != nil {
		s.metrics.IncrementFailure(reasonEngineFault)
		return 0, fmt.Errorf("utc timestamp of %s: %w", dt, err)
	}

	s.metrics.IncrementCorrection(stageOffset)
	if s.logger != nil {
		s.logger.Debug("correcting approximate conversion",
			"record", dt.String(),
			"off_by_seconds", diff,
		)
	}
	ts -= engine.Timestamp(int64(diff) * oneSec)

	diff, err = s.SecondsOff(ts, dt)
	if err != nil {
		s.metrics.IncrementFailure(reasonEngineFault)
		return 0, fmt.Errorf("utc timestamp of %s: %w", dt, err)
	}
	if diff == 0 {
		return ts, nil
	}

	// An offset-corrected timestamp can still land a second out when the
	// platform slips a leap second between the approximation and the
	// target. Probe each neighbor before giving up.
	probes := []struct {
		stage string
		ts    engine.Timestamp
	}{
		{stage: stageProbeForward, ts: ts + engine.Timestamp(oneSec)},
		{stage: stageProbeBackward, ts: ts - engine.Timestamp(oneSec)},
	}
	for _, p := range probes {
		d, err := s.SecondsOff(p.ts, dt)
		if err != nil {
			s.metrics.IncrementFailure(reasonEngineFault)
			return 0, fmt.Errorf("utc timestamp of %s: %w", dt, err)
		}
		if d == 0 {
			s.metrics.IncrementCorrection(p.stage)
			if s.logger != nil {
				s.logger.Debug("neighbor probe reconciled conversion",
					"record", dt.String(),
					"stage", p.stage,
				)
			}
			return p.ts, nil
		}
	}

	s.metrics.IncrementFailure(reasonUnreconcilable)
	if s.logger != nil {
		s.logger.Error("conversion disagrees beyond correction bound",
			"record", dt.String(),
			"off_by_seconds", diff,
		)
	}
	return 0, fmt.Errorf("utc timestamp of %s: off by %ds after correction: %w",
		dt, diff, sentinel.ErrUnreconcilable)
}

// Check reports whether ts decomposes to exactly want's UTC fields. When it
// does not, secsDiff holds the intraday seconds from want to the actual
// decomposition, meaningful within 24 hours.
func (s *Service) Check(ts engine.Timestamp, want civil.DateTime) (agrees bool, secsDiff int, err error) {
	got, err := s.eng.UTC(ts)
	if err != nil {
		return false, 0, fmt.Errorf("check timestamp %d: %w", ts, err)
	}
	if want.Equal(got) {
		return true, 0, nil
	}
	return false, want.IntradaySeconds(got), nil
}

// SecondsOff returns the intraday seconds from want to the UTC decomposition
// of ts. Zero means the time-of-day fields agree; it does not by itself
// prove the dates agree.
func (s *Service) SecondsOff(ts engine.Timestamp, want civil.DateTime) (int, error) {
	got, err := s.eng.UTC(ts)
	if err != nil {
		return 0, err
	}
	return want.IntradaySeconds(got), nil
}
