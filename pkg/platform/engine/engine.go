// Package engine converts civil date-time records to and from platform
// timestamps. The conversions mirror the platform's own locale handling: a
// forward conversion interprets a record in the engine's location, and a UTC
// decomposition breaks a timestamp into the fields a UTC wall clock would
// show for it.
//
// Engines make no promise that forward conversion and UTC decomposition
// agree instant-for-instant; that reconciliation lives in pkg/reconcile.
package engine

import "tempus/pkg/civil"

// Timestamp is an opaque platform instant. Callers treat it as a token:
// ordering and arithmetic on it belong to the engine that issued it.
type Timestamp int64

// Engine is a platform conversion pair. Implementations interpret a civil
// record in their configured location on the forward path and decompose
// timestamps as UTC on the reverse path.
//
// Timestamp rejects records that fail civil validation with
// sentinel.ErrInvalidDateTime and instants the platform cannot encode with
// sentinel.ErrNotRepresentable. UTC reports platform decomposition failures
// with sentinel.ErrEngineFault. All errors are wrapped, matchable with
// errors.Is.
type Engine interface {
	Timestamp(dt civil.DateTime) (Timestamp, error)
	UTC(ts Timestamp) (civil.DateTime, error)
}
