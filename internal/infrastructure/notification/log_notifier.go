// Package notification delivers acceptance invitations. Email delivery is out of
// scope; the log notifier stands in for it.
package notification

import (
	"context"

	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase/interfaces"

	"go.uber.org/zap"
)

type LogNotifier struct {
	logger  *zap.Logger
	showOTP bool
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

// NewLogNotifier logs invitations. The code itself is only written when showOTP
// is set, which mock mode does.
func NewLogNotifier(logger *zap.Logger, showOTP bool) *LogNotifier {
	return &LogNotifier{logger: logger, showOTP: showOTP}
}

func (n *LogNotifier) SendAcceptanceInvite(_ context.Context, recipient entities.Party, offer entities.Offer, link entities.AcceptanceLink, otp string) error {
	fields := []zap.Field{
		zap.String("offer_id", offer.ID),
		zap.String("recipient_id", recipient.ID),
		zap.String("recipient_email", recipient.Email),
		zap.String("link", link.Link),
		zap.Time("otp_expires_at", link.OTPExpiresAt),
	}
	if n.showOTP {
		fields = append(fields, zap.String("otp", otp))
	}
	n.logger.Info("acceptance invite", fields...)
	return nil
}
