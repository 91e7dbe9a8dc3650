package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"bond_portal/internal/config"
	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrInvalidOTP            = errors.New("invalid otp")
	ErrOTPNotVerified        = errors.New("otp not verified")
	ErrOfferAlreadyFinalized = errors.New("offer already finalized")
	ErrOfferNotOpen          = errors.New("offer is not open for acceptance")
	ErrUpstreamFailure       = errors.New("upstream failure")
)

// Audit reasons. They are stored in audit details only and never sent to clients.
const (
	reasonInvalidToken     = "Invalid or expired token"
	reasonInvalidOTP       = "Invalid OTP"
	reasonOTPExpired       = "OTP expired"
	reasonOTPNotVerified   = "otp not verified"
	reasonAlreadyFinalized = "offer already finalized"
	reasonStateChanged     = "acceptance state changed"
	reasonOfferNotFound    = "offer not found"
	reasonOfferNotOpen     = "offer not open"
	reasonPartyNotFound    = "party not found"
	reasonUpstream         = "upstream failure"
)

// IAcceptanceUseCase drives the external-party side of the bond acceptance
// protocol plus the broker-side link issuance that starts it.
//
// Per offer: awaiting_otp -> certificate_shown -> completed. Every call leaves
// exactly one ATTEMPT and one terminal audit event.
type IAcceptanceUseCase interface {
	ValidateOTP(ctx context.Context, offerID, token, otp string) (entities.CertificateView, error)
	Accept(ctx context.Context, offerID, token string) (entities.Finalization, error)
	Reject(ctx context.Context, offerID, token string) (entities.Finalization, error)
	IssueAcceptanceLink(ctx context.Context, offerID string, actor entities.Actor) (entities.AcceptanceLink, error)
}

// AcceptanceSettings are the timing and URL settings of the protocol.
type AcceptanceSettings struct {
	TokenTTL        time.Duration
	SessionTTL      time.Duration
	UpstreamTimeout time.Duration
	PublicBaseURL   string
}

// AcceptanceDeps groups the collaborators of AcceptanceUseCase.
type AcceptanceDeps struct {
	Tokens   interfaces.ITokenService
	OTPs     interfaces.IOTPStore
	States   interfaces.IAcceptanceStateStore
	Offers   interfaces.IOfferRepository
	Parties  interfaces.IPartyRepository
	Notifier interfaces.INotifier
	Audit    *AuditLogger
	Logger   *zap.Logger
}

type AcceptanceUseCase struct {
	deps     AcceptanceDeps
	env      config.Environment
	settings AcceptanceSettings
	now      func() time.Time
}

var _ IAcceptanceUseCase = (*AcceptanceUseCase)(nil)

func NewAcceptanceUseCase(deps AcceptanceDeps, env config.Environment, settings AcceptanceSettings) *AcceptanceUseCase {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Audit == nil {
		deps.Audit = NewAuditLogger(nil, deps.Logger)
	}
	return &AcceptanceUseCase{deps: deps, env: env, settings: settings, now: time.Now}
}

func (u *AcceptanceUseCase) WithClock(now func() time.Time) *AcceptanceUseCase {
	u.now = now
	return u
}

func (u *AcceptanceUseCase) ValidateOTP(ctx context.Context, offerID, token, otp string) (entities.CertificateView, error) {
	trail := u.deps.Audit.Begin(ctx, entities.AuditPrefixOTPValidation, entities.AuditResourceBond, offerID, map[string]any{
		"hasToken": token != "",
		"hasOtp":   otp != "",
	})
	defer trail.Close()

	claims, ok := u.verify(offerID, token)
	if !ok {
		trail.Failed(reasonInvalidToken, nil)
		return entities.CertificateView{}, ErrInvalidToken
	}

	state, err := u.deps.States.Get(ctx, offerID)
	if err != nil {
		trail.Error(reasonUpstream, err, nil)
		return entities.CertificateView{}, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}
	if state == entities.AcceptanceCompleted {
		trail.Failed(reasonAlreadyFinalized, nil)
		return entities.CertificateView{}, ErrInvalidOTP
	}

	// Display data is loaded before the code is consumed so an unreachable
	// record store leaves the code usable.
	view, err := u.loadCertificate(ctx, offerID)
	if err != nil {
		trail.Error(reasonUpstream, err, nil)
		return entities.CertificateView{}, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}
	if view.Offer.ID == "" || !claimsMatch(claims, view.Offer) {
		trail.Failed(reasonInvalidToken, map[string]any{"detail": reasonOfferNotFound})
		return entities.CertificateView{}, ErrInvalidToken
	}
	if view.Policyholder.ID == "" || view.Beneficiary.ID == "" {
		trail.Error(reasonPartyNotFound, nil, nil)
		return entities.CertificateView{}, fmt.Errorf("%w: %s", ErrUpstreamFailure, reasonPartyNotFound)
	}
	if !view.Offer.IsOpen() {
		trail.Failed(reasonAlreadyFinalized, map[string]any{"status": string(view.Offer.Status)})
		return entities.CertificateView{}, ErrInvalidOTP
	}

	outcome, bypass, err := u.checkOTP(ctx, offerID, otp)
	if err != nil {
		trail.Error(reasonUpstream, err, nil)
		return entities.CertificateView{}, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}
	switch outcome {
	case entities.OTPValid:
	case entities.OTPExpired:
		trail.Failed(reasonOTPExpired, map[string]any{"otpOutcome": string(outcome)})
		return entities.CertificateView{}, ErrInvalidOTP
	default:
		trail.Failed(reasonInvalidOTP, map[string]any{"otpOutcome": string(outcome)})
		return entities.CertificateView{}, ErrInvalidOTP
	}

	moved, err := u.deps.States.CompareAndSet(ctx, offerID, state, entities.AcceptanceCertificateShown, u.settings.SessionTTL)
	if err != nil {
		trail.Error(reasonUpstream, err, nil)
		return entities.CertificateView{}, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}
	if !moved {
		trail.Failed(reasonStateChanged, nil)
		return entities.CertificateView{}, ErrInvalidOTP
	}

	trail.Success(map[string]any{"devBypass": bypass})
	return view, nil
}

func (u *AcceptanceUseCase) Accept(ctx context.Context, offerID, token string) (entities.Finalization, error) {
	return u.finalize(ctx, offerID, token, entities.OfferStatusAccepted)
}

func (u *AcceptanceUseCase) Reject(ctx context.Context, offerID, token string) (entities.Finalization, error) {
	return u.finalize(ctx, offerID, token, entities.OfferStatusRejected)
}

func (u *AcceptanceUseCase) finalize(ctx context.Context, offerID, token string, status entities.OfferStatus) (entities.Finalization, error) {
	prefix := entities.AuditPrefixBondAccept
	action := entities.HistoryActionAccepted
	if status == entities.OfferStatusRejected {
		prefix = entities.AuditPrefixBondReject
		action = entities.HistoryActionRejected
	}

	trail := u.deps.Audit.Begin(ctx, prefix, entities.AuditResourceBond, offerID, map[string]any{
		"hasToken": token != "",
	})
	defer trail.Close()

	claims, ok := u.verify(offerID, token)
	if !ok {
		trail.Failed(reasonInvalidToken, nil)
		return entities.Finalization{}, ErrInvalidToken
	}

	state, err := u.deps.States.Get(ctx, offerID)
	if err != nil {
		trail.Error(reasonUpstream, err, nil)
		return entities.Finalization{}, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}
	switch state {
	case entities.AcceptanceCompleted:
		trail.Failed(reasonAlreadyFinalized, nil)
		return entities.Finalization{}, ErrOfferAlreadyFinalized
	case entities.AcceptanceCertificateShown:
	default:
		trail.Failed(reasonOTPNotVerified, nil)
		return entities.Finalization{}, ErrOTPNotVerified
	}

	at := u.now().UTC()
	entry := entities.EditHistoryEntry{
		ID:        uuid.NewString(),
		Timestamp: at,
		UserID:    claims.PolicyholderID,
		UserName:  "acceptance link",
		Action:    action,
		Changes: map[string]any{
			"status": map[string]any{"from": string(entities.OfferStatusPending), "to": string(status)},
		},
	}

	uctx, cancel := u.upstream(ctx)
	offer, err := u.deps.Offers.Finalize(uctx, offerID, status, at, entry)
	cancel()
	if err != nil {
		trail.Error(reasonUpstream, err, nil)
		return entities.Finalization{}, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}
	if offer.ID == "" {
		return entities.Finalization{}, u.explainFinalizeRefusal(ctx, offerID, trail)
	}

	u.complete(ctx, offerID)
	trail.Success(map[string]any{"status": string(status)})
	return entities.Finalization{BondID: offer.ID, Status: status, At: at}, nil
}

// explainFinalizeRefusal re-reads the offer after Finalize's condition failed.
// Only a final status completes the protocol; an offer withdrawn while the
// certificate was shown stays pending and the session is left as it was.
func (u *AcceptanceUseCase) explainFinalizeRefusal(ctx context.Context, offerID string, trail *AuditTrail) error {
	uctx, cancel := u.upstream(ctx)
	current, err := u.deps.Offers.GetByID(uctx, offerID)
	cancel()
	if err != nil {
		trail.Error(reasonUpstream, err, nil)
		return fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}
	if current.Status.IsFinal() {
		u.complete(ctx, offerID)
		trail.Failed(reasonAlreadyFinalized, map[string]any{"status": string(current.Status)})
		return ErrOfferAlreadyFinalized
	}
	trail.Failed(reasonOfferNotOpen, map[string]any{"lifecycle": string(current.Lifecycle)})
	return ErrOfferNotOpen
}

// complete marks the protocol finished. The record store is authoritative for
// the final status, so a failure here is only logged.
func (u *AcceptanceUseCase) complete(ctx context.Context, offerID string) {
	if _, err := u.deps.States.CompareAndSet(ctx, offerID, entities.AcceptanceCertificateShown, entities.AcceptanceCompleted, u.settings.SessionTTL); err != nil {
		u.deps.Logger.Warn("acceptance state not completed", zap.String("offer_id", offerID), zap.Error(err))
	}
}

func (u *AcceptanceUseCase) IssueAcceptanceLink(ctx context.Context, offerID string, actor entities.Actor) (entities.AcceptanceLink, error) {
	offerID = strings.TrimSpace(offerID)
	trail := u.deps.Audit.Begin(ctx, entities.AuditPrefixAcceptanceLink, entities.AuditResourceOffer, offerID, map[string]any{
		"userId": actor.UserID,
	})
	defer trail.Close()

	uctx, cancel := u.upstream(ctx)
	offer, err := u.deps.Offers.GetByID(uctx, offerID)
	cancel()
	if err != nil {
		trail.Error(reasonUpstream, err, nil)
		return entities.AcceptanceLink{}, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}
	if offer.ID == "" || offer.Lifecycle != entities.LifecycleActive {
		trail.Failed(reasonOfferNotFound, nil)
		return entities.AcceptanceLink{}, ErrOfferNotFound
	}
	if !offer.IsOpen() {
		trail.Failed(reasonOfferNotOpen, map[string]any{"status": string(offer.Status)})
		return entities.AcceptanceLink{}, ErrOfferNotOpen
	}

	uctx, cancel = u.upstream(ctx)
	policyholder, err := u.deps.Parties.GetByID(uctx, offer.PolicyholderID)
	cancel()
	if err != nil {
		trail.Error(reasonUpstream, err, nil)
		return entities.AcceptanceLink{}, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}
	if policyholder.ID == "" {
		trail.Failed(reasonPartyNotFound, nil)
		return entities.AcceptanceLink{}, ErrPartyNotFound
	}

	issuedAt := u.now()
	token, err := u.deps.Tokens.Issue(entities.ClaimsForOffer(offer), u.settings.TokenTTL)
	if err != nil {
		trail.Error("token issue failed", err, nil)
		return entities.AcceptanceLink{}, fmt.Errorf("issue token: %w", err)
	}
	code, otpExpiresAt, err := u.deps.OTPs.Issue(ctx, offerID)
	if err != nil {
		trail.Error(reasonUpstream, err, nil)
		return entities.AcceptanceLink{}, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}

	// A new link restarts the protocol for this offer.
	state, err := u.deps.States.Get(ctx, offerID)
	if err == nil && state != entities.AcceptanceAwaitingOTP {
		_, err = u.deps.States.CompareAndSet(ctx, offerID, state, entities.AcceptanceAwaitingOTP, 0)
	}
	if err != nil {
		trail.Error(reasonUpstream, err, nil)
		return entities.AcceptanceLink{}, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
	}

	link := entities.AcceptanceLink{
		OfferID:      offerID,
		Token:        token,
		Link:         u.acceptanceURL(offerID, token),
		ExpiresAt:    issuedAt.Add(u.settings.TokenTTL).UTC(),
		OTPExpiresAt: otpExpiresAt.UTC(),
	}
	if u.env.IsMock() {
		link.OTP = code
	}

	if u.deps.Notifier != nil {
		if err := u.deps.Notifier.SendAcceptanceInvite(ctx, policyholder, offer, link, code); err != nil {
			trail.Error("notification failed", err, nil)
			return entities.AcceptanceLink{}, fmt.Errorf("%w: %v", ErrUpstreamFailure, err)
		}
	}

	trail.Success(map[string]any{"recipientId": policyholder.ID})
	return link, nil
}

func (u *AcceptanceUseCase) verify(offerID, token string) (entities.AcceptanceClaims, bool) {
	if token == "" {
		return entities.AcceptanceClaims{}, false
	}
	claims, ok := u.deps.Tokens.Verify(token)
	if !ok || claims.OfferID != offerID {
		return entities.AcceptanceClaims{}, false
	}
	return claims, true
}

func (u *AcceptanceUseCase) checkOTP(ctx context.Context, offerID, otp string) (entities.OTPOutcome, bool, error) {
	if u.env.DevBypassEnabled() && otp == entities.DevBypassOTP {
		u.deps.Logger.Warn("development OTP bypass used", zap.String("offer_id", offerID))
		return entities.OTPValid, true, nil
	}
	outcome, err := u.deps.OTPs.Validate(ctx, offerID, otp)
	return outcome, false, err
}

func (u *AcceptanceUseCase) loadCertificate(ctx context.Context, offerID string) (entities.CertificateView, error) {
	ctx, cancel := u.upstream(ctx)
	defer cancel()

	offer, err := u.deps.Offers.GetByID(ctx, offerID)
	if err != nil || offer.ID == "" {
		return entities.CertificateView{}, err
	}
	policyholder, err := u.deps.Parties.GetByID(ctx, offer.PolicyholderID)
	if err != nil {
		return entities.CertificateView{}, err
	}
	beneficiary, err := u.deps.Parties.GetByID(ctx, offer.BeneficiaryID)
	if err != nil {
		return entities.CertificateView{}, err
	}
	return entities.CertificateView{Offer: offer, Policyholder: policyholder, Beneficiary: beneficiary}, nil
}

func (u *AcceptanceUseCase) upstream(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.settings.UpstreamTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, u.settings.UpstreamTimeout)
}

func (u *AcceptanceUseCase) acceptanceURL(offerID, token string) string {
	base := strings.TrimRight(u.settings.PublicBaseURL, "/")
	return base + "/bonds/" + url.PathEscape(offerID) + "/accept?token=" + url.QueryEscape(token)
}

// claimsMatch rejects links issued before the offer's parties were changed.
func claimsMatch(c entities.AcceptanceClaims, o entities.Offer) bool {
	return o.Lifecycle == entities.LifecycleActive &&
		c.ProposalID == o.ProposalID &&
		c.PolicyholderID == o.PolicyholderID &&
		c.BeneficiaryID == o.BeneficiaryID
}
