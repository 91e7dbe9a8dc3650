package cache

import (
	"context"
	"sync"
	"time"

	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase/interfaces"
)

type otpRecord struct {
	codeHash  string
	expiresAt time.Time
}

// OTPMemoryStore keeps one-time codes in process memory. Used in mock mode and tests;
// records are lost on restart.
type OTPMemoryStore struct {
	mu      sync.Mutex
	records map[string]otpRecord
	hasher  *CodeHasher
	ttl     time.Duration
	now     func() time.Time
	gen     func() (string, error)
}

var _ interfaces.IOTPStore = (*OTPMemoryStore)(nil)

func NewOTPMemoryStore(hasher *CodeHasher, ttl time.Duration) *OTPMemoryStore {
	return &OTPMemoryStore{
		records: map[string]otpRecord{},
		hasher:  hasher,
		ttl:     ttl,
		now:     time.Now,
		gen:     generateCode,
	}
}

// WithClock replaces the time source; used by tests.
func (s *OTPMemoryStore) WithClock(now func() time.Time) *OTPMemoryStore {
	s.now = now
	return s
}

// WithGenerator replaces the code generator; used by tests that need a known code.
func (s *OTPMemoryStore) WithGenerator(gen func() (string, error)) *OTPMemoryStore {
	s.gen = gen
	return s
}

func (s *OTPMemoryStore) Issue(_ context.Context, offerID string) (string, time.Time, error) {
	code, err := s.gen()
	if err != nil {
		return "", time.Time{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.purgeExpiredLocked(now)

	expiresAt := now.Add(s.ttl)
	s.records[offerID] = otpRecord{codeHash: s.hasher.Hash(offerID, code), expiresAt: expiresAt}
	return code, expiresAt, nil
}

func (s *OTPMemoryStore) Validate(_ context.Context, offerID, code string) (entities.OTPOutcome, error) {
	if !entities.IsWellFormedOTP(code) {
		return entities.OTPInvalid, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[offerID]
	if !ok {
		return entities.OTPNotFound, nil
	}
	if !s.now().Before(rec.expiresAt) {
		return entities.OTPExpired, nil
	}
	if !s.hasher.Matches(rec.codeHash, offerID, code) {
		return entities.OTPInvalid, nil
	}
	delete(s.records, offerID)
	return entities.OTPValid, nil
}

// purgeExpiredLocked drops records that can no longer validate. Expired records are
// kept until the next Issue so Validate can still report OTPExpired for them.
func (s *OTPMemoryStore) purgeExpiredLocked(now time.Time) {
	for id, rec := range s.records {
		if now.Sub(rec.expiresAt) > s.ttl {
			delete(s.records, id)
		}
	}
}
