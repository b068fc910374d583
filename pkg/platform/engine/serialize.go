package engine

import (
	"sync"

	"tempus/pkg/civil"
)

// Serialized admits one conversion at a time to the engine it wraps. Engines
// backed by non-reentrant platform state can be shared across goroutines
// behind it.
type Serialized struct {
	mu  sync.Mutex
	eng Engine
}

var _ Engine = (*Serialized)(nil)

// NewSerialized wraps eng. A nil eng yields a nil wrapper, which is not
// usable; callers own the guard.
func NewSerialized(eng Engine) *Serialized {
	if eng == nil {
		return nil
	}
	return &Serialized{eng: eng}
}

func (s *Serialized) Timestamp(dt civil.DateTime) (Timestamp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Timestamp(dt)
}

func (s *Serialized) UTC(ts Timestamp) (civil.DateTime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.UTC(ts)
}
