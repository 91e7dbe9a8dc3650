package entities

import "time"

// OfferStatus is the acceptance outcome of an offer.
//
// Domain notes:
//   - An offer is created pending and only leaves pending through the acceptance flow.
//   - accepted and rejected are terminal.
type OfferStatus string

const (
	OfferStatusPending  OfferStatus = "pending"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusRejected OfferStatus = "rejected"
)

func (s OfferStatus) IsFinal() bool {
	return s == OfferStatusAccepted || s == OfferStatusRejected
}

// Offer is a proposed bond awaiting acceptance or rejection by the external parties.
// Once accepted it is the bond itself; bondId and offerId are the same value.
//
// Storage model (DynamoDB):
//   - PK: id
//   - history is stored inline and only ever appended to (list_append)
//
// Monetary representation:
//   - BondAmount and Premium are kept in the currency's major unit.
type Offer struct {
	ID             string             `json:"id"`
	ProposalID     string             `json:"proposal_id"`
	PolicyholderID string             `json:"policyholder_id"`
	BeneficiaryID  string             `json:"beneficiary_id"`
	BondAmount     float64            `json:"bond_amount"`
	Premium        float64            `json:"premium"`
	EffectiveDate  time.Time          `json:"effective_date"`
	ExpiryDate     time.Time          `json:"expiry_date"`
	Terms          string             `json:"terms"`
	Status         OfferStatus        `json:"status"`
	Lifecycle      Lifecycle          `json:"lifecycle"`
	AcceptedAt     *time.Time         `json:"accepted_at,omitempty"`
	RejectedAt     *time.Time         `json:"rejected_at,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	History        []EditHistoryEntry `json:"history,omitempty"`
}

// IsOpen reports whether the offer can still be accepted or rejected.
func (o Offer) IsOpen() bool {
	return o.Lifecycle == LifecycleActive && o.Status == OfferStatusPending
}

// OfferPatch carries the editable fields of a pending offer. Nil fields are left untouched.
type OfferPatch struct {
	BondAmount    *float64
	Premium       *float64
	EffectiveDate *time.Time
	ExpiryDate    *time.Time
	Terms         *string
}

func (p OfferPatch) IsEmpty() bool {
	return p.BondAmount == nil && p.Premium == nil && p.EffectiveDate == nil && p.ExpiryDate == nil && p.Terms == nil
}

// Apply returns a copy of o with the patch applied and the changed fields as a history diff.
func (p OfferPatch) Apply(o Offer) (Offer, map[string]any) {
	changes := map[string]any{}
	if p.BondAmount != nil && *p.BondAmount != o.BondAmount {
		changes["bond_amount"] = map[string]any{"from": o.BondAmount, "to": *p.BondAmount}
		o.BondAmount = *p.BondAmount
	}
	if p.Premium != nil && *p.Premium != o.Premium {
		changes["premium"] = map[string]any{"from": o.Premium, "to": *p.Premium}
		o.Premium = *p.Premium
	}
	if p.EffectiveDate != nil && !p.EffectiveDate.Equal(o.EffectiveDate) {
		changes["effective_date"] = map[string]any{"from": o.EffectiveDate, "to": *p.EffectiveDate}
		o.EffectiveDate = *p.EffectiveDate
	}
	if p.ExpiryDate != nil && !p.ExpiryDate.Equal(o.ExpiryDate) {
		changes["expiry_date"] = map[string]any{"from": o.ExpiryDate, "to": *p.ExpiryDate}
		o.ExpiryDate = *p.ExpiryDate
	}
	if p.Terms != nil && *p.Terms != o.Terms {
		changes["terms"] = map[string]any{"from": o.Terms, "to": *p.Terms}
		o.Terms = *p.Terms
	}
	return o, changes
}
