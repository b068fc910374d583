package sentinel

import "errors"

// Sentinel errors for platform time facts. Engines and the reconciliation
// layer return these (optionally wrapped) so callers can branch with
// errors.Is instead of matching message text.
//
// These represent factual states about a conversion:
// - ErrInvalidDateTime: record fails civil validation, conversion refused
// - ErrNotRepresentable: instant exists but the platform cannot encode it
// - ErrEngineFault: platform conversion itself failed or misbehaved
// - ErrUnreconcilable: conversions disagree beyond the correction bound
var (
	ErrInvalidDateTime  = errors.New("invalid date-time")
	ErrNotRepresentable = errors.New("not representable")
	ErrEngineFault      = errors.New("engine fault")
	ErrUnreconcilable   = errors.New("unreconcilable")
)
