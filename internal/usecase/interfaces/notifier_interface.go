package interfaces

import (
	"context"

	"bond_portal/internal/domain/entities"
)

// INotifier delivers acceptance invitations (link + code) to an external party.
type INotifier interface {
	SendAcceptanceInvite(ctx context.Context, recipient entities.Party, offer entities.Offer, link entities.AcceptanceLink, otp string) error
}
