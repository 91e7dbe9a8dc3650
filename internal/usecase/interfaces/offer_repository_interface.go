package interfaces

import (
	"context"
	"errors"
	"time"

	"bond_portal/internal/domain/entities"
)

// ErrOfferExists is returned by Create when the id is already taken.
var ErrOfferExists = errors.New("offer already exists")

// IOfferRepository is the Offer/Bond record store consumed by the acceptance flow
// and the offer CRUD routes.
//
// Conventions (same as the other repositories):
//   - a zero-value Offer with nil error means "not found" for reads
//   - conditional writes return a zero-value Offer when the condition does not hold
//   - every mutation appends exactly one history entry in the same write
type IOfferRepository interface {
	Create(ctx context.Context, o entities.Offer) (entities.Offer, error)
	GetByID(ctx context.Context, id string) (entities.Offer, error)
	List(ctx context.Context, includeDeleted bool) ([]entities.Offer, error)
	// Update rewrites the editable fields of an active, pending offer.
	Update(ctx context.Context, o entities.Offer, entry entities.EditHistoryEntry) (entities.Offer, error)
	// SetLifecycle moves an offer between active and soft_deleted when it is currently in from.
	SetLifecycle(ctx context.Context, id string, from, to entities.Lifecycle, entry entities.EditHistoryEntry) (entities.Offer, error)
	// Finalize sets accepted/rejected on an active, pending offer and stamps the matching timestamp.
	Finalize(ctx context.Context, id string, status entities.OfferStatus, at time.Time, entry entities.EditHistoryEntry) (entities.Offer, error)
}
