package cache

import (
	"context"
	"sync"
	"time"

	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase/interfaces"
)

type stateRecord struct {
	state     entities.AcceptanceState
	expiresAt time.Time
}

// AcceptanceStateMemoryStore is the in-process acceptance state store.
type AcceptanceStateMemoryStore struct {
	mu     sync.Mutex
	states map[string]stateRecord
	now    func() time.Time
}

var _ interfaces.IAcceptanceStateStore = (*AcceptanceStateMemoryStore)(nil)

func NewAcceptanceStateMemoryStore() *AcceptanceStateMemoryStore {
	return &AcceptanceStateMemoryStore{states: map[string]stateRecord{}, now: time.Now}
}

// WithClock replaces the time source; used by tests.
func (s *AcceptanceStateMemoryStore) WithClock(now func() time.Time) *AcceptanceStateMemoryStore {
	s.now = now
	return s
}

func (s *AcceptanceStateMemoryStore) Get(_ context.Context, offerID string) (entities.AcceptanceState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked(offerID), nil
}

func (s *AcceptanceStateMemoryStore) CompareAndSet(_ context.Context, offerID string, from, to entities.AcceptanceState, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentLocked(offerID) != from {
		return false, nil
	}
	if to == entities.AcceptanceAwaitingOTP {
		delete(s.states, offerID)
		return true, nil
	}
	rec := stateRecord{state: to}
	if ttl > 0 {
		rec.expiresAt = s.now().Add(ttl)
	}
	s.states[offerID] = rec
	return true, nil
}

func (s *AcceptanceStateMemoryStore) currentLocked(offerID string) entities.AcceptanceState {
	rec, ok := s.states[offerID]
	if !ok {
		return entities.AcceptanceAwaitingOTP
	}
	if !rec.expiresAt.IsZero() && !s.now().Before(rec.expiresAt) {
		delete(s.states, offerID)
		return entities.AcceptanceAwaitingOTP
	}
	return rec.state
}
