package response

import (
	"time"

	"bond_portal/internal/domain/entities"
)

// CertificateResponse is returned by validate-otp.
type CertificateResponse struct {
	Offer        OfferResponse `json:"offer"`
	Policyholder PartyResponse `json:"policyholder"`
	Beneficiary  PartyResponse `json:"beneficiary"`
}

func FromCertificate(v entities.CertificateView) CertificateResponse {
	return CertificateResponse{
		Offer:        FromOffer(v.Offer),
		Policyholder: FromParty(v.Policyholder),
		Beneficiary:  FromParty(v.Beneficiary),
	}
}

// FinalizationResponse is returned by accept and reject. Exactly one of
// AcceptedAt and RejectedAt is set.
type FinalizationResponse struct {
	Message    string     `json:"message"`
	BondID     string     `json:"bondId"`
	Status     string     `json:"status"`
	AcceptedAt *time.Time `json:"acceptedAt,omitempty"`
	RejectedAt *time.Time `json:"rejectedAt,omitempty"`
}

func FromFinalization(f entities.Finalization) FinalizationResponse {
	at := f.At
	res := FinalizationResponse{BondID: f.BondID, Status: string(f.Status)}
	if f.Status == entities.OfferStatusAccepted {
		res.Message = "Bond accepted successfully"
		res.AcceptedAt = &at
	} else {
		res.Message = "Bond rejected successfully"
		res.RejectedAt = &at
	}
	return res
}

type AcceptanceLinkResponse struct {
	OfferID      string    `json:"offerId"`
	Token        string    `json:"token"`
	Link         string    `json:"link"`
	ExpiresAt    time.Time `json:"expiresAt"`
	OTPExpiresAt time.Time `json:"otpExpiresAt"`
	OTP          string    `json:"otp,omitempty"`
}

func FromAcceptanceLink(l entities.AcceptanceLink) AcceptanceLinkResponse {
	return AcceptanceLinkResponse{
		OfferID:      l.OfferID,
		Token:        l.Token,
		Link:         l.Link,
		ExpiresAt:    l.ExpiresAt,
		OTPExpiresAt: l.OTPExpiresAt,
		OTP:          l.OTP,
	}
}
