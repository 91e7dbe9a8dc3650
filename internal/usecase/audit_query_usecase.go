package usecase

import (
	"context"
	"errors"
	"strings"

	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase/interfaces"
)

// ErrAuditNotQueryable is returned when the configured sink is write-only (Kafka).
var ErrAuditNotQueryable = errors.New("audit sink is not queryable")

type IAuditQueryUseCase interface {
	ListByOffer(ctx context.Context, offerID string) ([]entities.AuditEvent, error)
}

type AuditQueryUseCase struct {
	reader interfaces.IAuditReader
	offers interfaces.IOfferRepository
}

var _ IAuditQueryUseCase = (*AuditQueryUseCase)(nil)

// NewAuditQueryUseCase accepts a nil reader when the sink cannot be read back.
func NewAuditQueryUseCase(reader interfaces.IAuditReader, offers interfaces.IOfferRepository) *AuditQueryUseCase {
	return &AuditQueryUseCase{reader: reader, offers: offers}
}

func (u *AuditQueryUseCase) ListByOffer(ctx context.Context, offerID string) ([]entities.AuditEvent, error) {
	if u.reader == nil {
		return nil, ErrAuditNotQueryable
	}
	offerID = strings.TrimSpace(offerID)
	if offerID == "" {
		return nil, ErrOfferNotFound
	}
	o, err := u.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if o.ID == "" {
		return nil, ErrOfferNotFound
	}
	return u.reader.ListByResourceID(ctx, offerID)
}
