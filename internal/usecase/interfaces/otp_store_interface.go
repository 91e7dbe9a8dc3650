package interfaces

import (
	"context"
	"time"

	"bond_portal/internal/domain/entities"
)

// IOTPStore keeps at most one outstanding one-time code per offer.
//
//   - Issue generates a new code, replacing any previous one for the offer.
//   - Validate consumes the record only on OTPValid; the check and the delete
//     are atomic so concurrent submissions of one code succeed at most once.
type IOTPStore interface {
	Issue(ctx context.Context, offerID string) (code string, expiresAt time.Time, err error)
	Validate(ctx context.Context, offerID, code string) (entities.OTPOutcome, error)
}
