package response

import (
	"time"

	"bond_portal/internal/domain/entities"
)

type OfferResponse struct {
	ID             string     `json:"id"`
	ProposalID     string     `json:"proposalId"`
	PolicyholderID string     `json:"policyholderId"`
	BeneficiaryID  string     `json:"beneficiaryId"`
	BondAmount     float64    `json:"bondAmount"`
	Premium        float64    `json:"premium"`
	EffectiveDate  time.Time  `json:"effectiveDate"`
	ExpiryDate     time.Time  `json:"expiryDate"`
	Terms          string     `json:"terms"`
	Status         string     `json:"status"`
	Lifecycle      string     `json:"lifecycle"`
	AcceptedAt     *time.Time `json:"acceptedAt,omitempty"`
	RejectedAt     *time.Time `json:"rejectedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func FromOffer(o entities.Offer) OfferResponse {
	return OfferResponse{
		ID:             o.ID,
		ProposalID:     o.ProposalID,
		PolicyholderID: o.PolicyholderID,
		BeneficiaryID:  o.BeneficiaryID,
		BondAmount:     o.BondAmount,
		Premium:        o.Premium,
		EffectiveDate:  o.EffectiveDate,
		ExpiryDate:     o.ExpiryDate,
		Terms:          o.Terms,
		Status:         string(o.Status),
		Lifecycle:      string(o.Lifecycle),
		AcceptedAt:     o.AcceptedAt,
		RejectedAt:     o.RejectedAt,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func FromOffers(offers []entities.Offer) []OfferResponse {
	out := make([]OfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, FromOffer(o))
	}
	return out
}

type HistoryEntryResponse struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	UserID    string         `json:"userId"`
	UserName  string         `json:"userName"`
	Action    string         `json:"action"`
	Changes   map[string]any `json:"changes,omitempty"`
}

func FromHistory(entries []entities.EditHistoryEntry) []HistoryEntryResponse {
	out := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryEntryResponse{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			UserID:    e.UserID,
			UserName:  e.UserName,
			Action:    string(e.Action),
			Changes:   e.Changes,
		})
	}
	return out
}

type PartyResponse struct {
	ID            string `json:"id"`
	Role          string `json:"role"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	CompanyNumber string `json:"companyNumber,omitempty"`
	Address       string `json:"address,omitempty"`
}

func FromParty(p entities.Party) PartyResponse {
	return PartyResponse{
		ID:            p.ID,
		Role:          string(p.Role),
		Name:          p.Name,
		Email:         p.Email,
		CompanyNumber: p.CompanyNumber,
		Address:       p.Address,
	}
}
