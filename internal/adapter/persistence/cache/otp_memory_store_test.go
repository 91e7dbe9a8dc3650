package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"bond_portal/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func fixedCode(code string) func() (string, error) {
	return func() (string, error) { return code, nil }
}

func TestOTPMemoryStore_SingleUse(t *testing.T) {
	ctx := context.Background()
	store := NewOTPMemoryStore(NewCodeHasher("k"), 15*time.Minute).WithGenerator(fixedCode("483920"))

	code, _, err := store.Issue(ctx, "O1")
	require.NoError(t, err)
	require.Equal(t, "483920", code)

	out, err := store.Validate(ctx, "O1", "483920")
	require.NoError(t, err)
	require.Equal(t, entities.OTPValid, out)

	out, err = store.Validate(ctx, "O1", "483920")
	require.NoError(t, err)
	require.Equal(t, entities.OTPNotFound, out, "replay of a consumed code must fail")
}

func TestOTPMemoryStore_MismatchDoesNotConsume(t *testing.T) {
	ctx := context.Background()
	store := NewOTPMemoryStore(NewCodeHasher("k"), 15*time.Minute).WithGenerator(fixedCode("007734"))
	_, _, err := store.Issue(ctx, "O1")
	require.NoError(t, err)

	out, err := store.Validate(ctx, "O1", "7734")
	require.NoError(t, err)
	require.Equal(t, entities.OTPInvalid, out, "malformed code is invalid")

	out, err = store.Validate(ctx, "O1", "007735")
	require.NoError(t, err)
	require.Equal(t, entities.OTPInvalid, out)

	out, err = store.Validate(ctx, "O1", "007734")
	require.NoError(t, err)
	require.Equal(t, entities.OTPValid, out, "leading zeros preserved through comparison")
}

func TestOTPMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	t0 := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)
	now := t0
	store := NewOTPMemoryStore(NewCodeHasher("k"), 15*time.Minute).
		WithClock(func() time.Time { return now }).
		WithGenerator(fixedCode("483920"))

	_, expiresAt, err := store.Issue(ctx, "O1")
	require.NoError(t, err)
	require.Equal(t, t0.Add(15*time.Minute), expiresAt)

	now = t0.Add(16 * time.Minute)
	out, err := store.Validate(ctx, "O1", "483920")
	require.NoError(t, err)
	require.Equal(t, entities.OTPExpired, out)

	out, err = store.Validate(ctx, "O1", "483920")
	require.NoError(t, err)
	require.Equal(t, entities.OTPExpired, out, "expired record is not deleted by validation")
}

func TestOTPMemoryStore_ReissueSupersedes(t *testing.T) {
	ctx := context.Background()
	codes := []string{"111111", "222222"}
	i := 0
	store := NewOTPMemoryStore(NewCodeHasher("k"), 15*time.Minute).WithGenerator(func() (string, error) {
		c := codes[i]
		i++
		return c, nil
	})

	_, _, err := store.Issue(ctx, "O1")
	require.NoError(t, err)
	_, _, err = store.Issue(ctx, "O1")
	require.NoError(t, err)

	out, err := store.Validate(ctx, "O1", "111111")
	require.NoError(t, err)
	require.Equal(t, entities.OTPInvalid, out)

	out, err = store.Validate(ctx, "O1", "222222")
	require.NoError(t, err)
	require.Equal(t, entities.OTPValid, out)
}

func TestOTPMemoryStore_ConcurrentValidation(t *testing.T) {
	ctx := context.Background()
	store := NewOTPMemoryStore(NewCodeHasher("k"), 15*time.Minute).WithGenerator(fixedCode("483920"))
	_, _, err := store.Issue(ctx, "O1")
	require.NoError(t, err)

	var successes atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			out, err := store.Validate(ctx, "O1", "483920")
			if err == nil && out.OK() {
				successes.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Equal(t, int32(1), successes.Load())
}

func TestOTPMemoryStore_PurgesLongExpiredOnIssue(t *testing.T) {
	ctx := context.Background()
	t0 := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)
	now := t0
	store := NewOTPMemoryStore(NewCodeHasher("k"), 15*time.Minute).WithClock(func() time.Time { return now })

	_, _, err := store.Issue(ctx, "old")
	require.NoError(t, err)

	now = t0.Add(31 * time.Minute)
	_, _, err = store.Issue(ctx, "new")
	require.NoError(t, err)

	out, err := store.Validate(ctx, "old", "123123")
	require.NoError(t, err)
	require.Equal(t, entities.OTPNotFound, out)
}
