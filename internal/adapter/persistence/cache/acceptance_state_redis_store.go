package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const stateNamespace = "acceptance:state"

// casScript: KEYS[1] state key; ARGV[1] expected state ("" = absent); ARGV[2] new state ("" = delete);
// ARGV[3] ttl ms (0 = no expiry). Returns 1 when the swap happened.
var casScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if not cur then cur = '' end
if cur ~= ARGV[1] then
  return 0
end
if ARGV[2] == '' then
  redis.call('DEL', KEYS[1])
  return 1
end
local ttl = tonumber(ARGV[3])
if ttl > 0 then
  redis.call('SET', KEYS[1], ARGV[2], 'PX', ttl)
else
  redis.call('SET', KEYS[1], ARGV[2])
end
return 1
`)

// AcceptanceStateRedisStore keeps acceptance state as plain string keys.
// The awaiting_otp state is represented by the key's absence.
type AcceptanceStateRedisStore struct {
	rdb redis.UniversalClient
}

var _ interfaces.IAcceptanceStateStore = (*AcceptanceStateRedisStore)(nil)

func NewAcceptanceStateRedisStore(rdb redis.UniversalClient) *AcceptanceStateRedisStore {
	return &AcceptanceStateRedisStore{rdb: rdb}
}

func stateKey(offerID string) string {
	return stateNamespace + ":{" + offerID + "}"
}

func encodeState(s entities.AcceptanceState) string {
	if s == entities.AcceptanceAwaitingOTP {
		return ""
	}
	return string(s)
}

func (s *AcceptanceStateRedisStore) Get(ctx context.Context, offerID string) (entities.AcceptanceState, error) {
	v, err := s.rdb.Get(ctx, stateKey(offerID)).Result()
	if errors.Is(err, redis.Nil) {
		return entities.AcceptanceAwaitingOTP, nil
	}
	if err != nil {
		return "", fmt.Errorf("get acceptance state: %w", err)
	}
	return entities.AcceptanceState(v), nil
}

func (s *AcceptanceStateRedisStore) CompareAndSet(ctx context.Context, offerID string, from, to entities.AcceptanceState, ttl time.Duration) (bool, error) {
	res, err := casScript.Run(ctx, s.rdb,
		[]string{stateKey(offerID)},
		encodeState(from), encodeState(to), ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, fmt.Errorf("set acceptance state: %w", err)
	}
	return res == 1, nil
}
