package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	otpNamespace = "otp:offer"
	// Keys outlive their expiry by this much so Validate can still tell
	// "expired" apart from "never issued".
	otpExpiredGrace = 15 * time.Minute
)

// Script result codes.
const (
	otpScriptNotFound = 0
	otpScriptExpired  = 1
	otpScriptMismatch = 2
	otpScriptValid    = 3
)

// validateScript checks and consumes in one round trip so two concurrent
// submissions of the same code cannot both succeed.
//
// KEYS[1] otp hash key; ARGV[1] submitted code hash; ARGV[2] now (unix ms)
var validateScript = redis.NewScript(`
local rec = redis.call('HMGET', KEYS[1], 'h', 'e')
if not rec[1] then
  return 0
end
if tonumber(rec[2]) <= tonumber(ARGV[2]) then
  return 1
end
if rec[1] ~= ARGV[1] then
  return 2
end
redis.call('DEL', KEYS[1])
return 3
`)

// OTPRedisStore keeps one-time codes in Redis as hashes {h: code hash, e: expiry ms}.
type OTPRedisStore struct {
	rdb    redis.UniversalClient
	hasher *CodeHasher
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.IOTPStore = (*OTPRedisStore)(nil)

func NewOTPRedisStore(rdb redis.UniversalClient, hasher *CodeHasher, ttl time.Duration) *OTPRedisStore {
	return &OTPRedisStore{rdb: rdb, hasher: hasher, ttl: ttl, now: time.Now}
}

func (s *OTPRedisStore) WithClock(now func() time.Time) *OTPRedisStore {
	s.now = now
	return s
}

func otpKey(offerID string) string {
	return otpNamespace + ":{" + offerID + "}"
}

func (s *OTPRedisStore) Issue(ctx context.Context, offerID string) (string, time.Time, error) {
	code, err := generateCode()
	if err != nil {
		return "", time.Time{}, err
	}
	expiresAt := s.now().Add(s.ttl)
	key := otpKey(offerID)

	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, "h", s.hasher.Hash(offerID, code), "e", strconv.FormatInt(expiresAt.UnixMilli(), 10))
		pipe.PExpire(ctx, key, s.ttl+otpExpiredGrace)
		return nil
	})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("store otp: %w", err)
	}
	return code, expiresAt, nil
}

func (s *OTPRedisStore) Validate(ctx context.Context, offerID, code string) (entities.OTPOutcome, error) {
	if !entities.IsWellFormedOTP(code) {
		return entities.OTPInvalid, nil
	}

	res, err := validateScript.Run(ctx, s.rdb,
		[]string{otpKey(offerID)},
		s.hasher.Hash(offerID, code),
		strconv.FormatInt(s.now().UnixMilli(), 10),
	).Int()
	if err != nil {
		return "", fmt.Errorf("validate otp: %w", err)
	}
	return outcomeFromScript(res), nil
}

func outcomeFromScript(res int) entities.OTPOutcome {
	switch res {
	case otpScriptValid:
		return entities.OTPValid
	case otpScriptExpired:
		return entities.OTPExpired
	case otpScriptMismatch:
		return entities.OTPInvalid
	default:
		return entities.OTPNotFound
	}
}
