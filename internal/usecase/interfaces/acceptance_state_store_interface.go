package interfaces

import (
	"context"
	"time"

	"bond_portal/internal/domain/entities"
)

// IAcceptanceStateStore keeps the per-offer acceptance protocol position.
//
// Get returns AcceptanceAwaitingOTP for offers with no stored state.
// CompareAndSet moves from -> to atomically and reports whether it did;
// setting AcceptanceAwaitingOTP removes the stored state.
type IAcceptanceStateStore interface {
	Get(ctx context.Context, offerID string) (entities.AcceptanceState, error)
	CompareAndSet(ctx context.Context, offerID string, from, to entities.AcceptanceState, ttl time.Duration) (bool, error)
}
