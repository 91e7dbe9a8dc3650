package entities

import (
	"time"
)

// AcceptanceClaims is the payload bound into an acceptance link token.
type AcceptanceClaims struct {
	OfferID        string    `json:"offerId"`
	ProposalID     string    `json:"proposalId"`
	PolicyholderID string    `json:"policyholderId"`
	BeneficiaryID  string    `json:"beneficiaryId"`
	IssuedAt       time.Time `json:"-"`
	ExpiresAt      time.Time `json:"-"`
}

// ClaimsForOffer binds an offer and its parties into token claims.
func ClaimsForOffer(o Offer) AcceptanceClaims {
	return AcceptanceClaims{
		OfferID:        o.ID,
		ProposalID:     o.ProposalID,
		PolicyholderID: o.PolicyholderID,
		BeneficiaryID:  o.BeneficiaryID,
	}
}

// AcceptanceState is the per-offer position in the acceptance protocol.
//
// AwaitingOTP is the implicit state of an offer with no stored state.
// Transitions only move forward: awaiting_otp -> certificate_shown -> completed.
type AcceptanceState string

const (
	AcceptanceAwaitingOTP      AcceptanceState = "awaiting_otp"
	AcceptanceCertificateShown AcceptanceState = "certificate_shown"
	AcceptanceCompleted        AcceptanceState = "completed"
)

// OTPOutcome is the result of validating a submitted code.
// Only OTPValid consumes the stored record.
type OTPOutcome string

const (
	OTPValid    OTPOutcome = "valid"
	OTPInvalid  OTPOutcome = "invalid"
	OTPNotFound OTPOutcome = "not_found"
	OTPExpired  OTPOutcome = "expired"
)

func (o OTPOutcome) OK() bool {
	return o == OTPValid
}

const (
	OTPLength = 6
	// DevBypassOTP is only honoured by development builds; see config.DevBypassCompiled.
	DevBypassOTP = "123456"
)

// IsWellFormedOTP reports whether code is exactly six ASCII digits.
// Codes are compared as strings so leading zeros are significant.
func IsWellFormedOTP(code string) bool {
	if len(code) != OTPLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

// CertificateView is what an external party sees after a successful OTP check.
type CertificateView struct {
	Offer        Offer
	Policyholder Party
	Beneficiary  Party
}

// Finalization is the outcome of an accept or reject call.
type Finalization struct {
	BondID string
	Status OfferStatus
	At     time.Time
}

// AcceptanceLink is what a broker receives when inviting the parties to accept an offer.
// OTP is only populated in mock mode.
type AcceptanceLink struct {
	OfferID      string
	Token        string
	Link         string
	ExpiresAt    time.Time
	OTPExpiresAt time.Time
	OTP          string
}
