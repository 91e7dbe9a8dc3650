package request

import (
	"strings"
	"time"

	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase"
)

type CreateOfferRequest struct {
	ProposalID     string    `json:"proposalId" binding:"required"`
	PolicyholderID string    `json:"policyholderId" binding:"required"`
	BeneficiaryID  string    `json:"beneficiaryId" binding:"required"`
	BondAmount     float64   `json:"bondAmount" binding:"required,gt=0"`
	Premium        float64   `json:"premium" binding:"gte=0"`
	EffectiveDate  time.Time `json:"effectiveDate" binding:"required"`
	ExpiryDate     time.Time `json:"expiryDate" binding:"required"`
	Terms          string    `json:"terms"`
}

func (r CreateOfferRequest) ToInput() usecase.CreateOfferInput {
	return usecase.CreateOfferInput{
		ProposalID:     strings.TrimSpace(r.ProposalID),
		PolicyholderID: strings.TrimSpace(r.PolicyholderID),
		BeneficiaryID:  strings.TrimSpace(r.BeneficiaryID),
		BondAmount:     r.BondAmount,
		Premium:        r.Premium,
		EffectiveDate:  r.EffectiveDate,
		ExpiryDate:     r.ExpiryDate,
		Terms:          r.Terms,
	}
}

// UpdateOfferRequest is a partial update; omitted fields are left untouched.
type UpdateOfferRequest struct {
	BondAmount    *float64   `json:"bondAmount"`
	Premium       *float64   `json:"premium"`
	EffectiveDate *time.Time `json:"effectiveDate"`
	ExpiryDate    *time.Time `json:"expiryDate"`
	Terms         *string    `json:"terms"`
}

func (r UpdateOfferRequest) ToPatch() entities.OfferPatch {
	return entities.OfferPatch{
		BondAmount:    r.BondAmount,
		Premium:       r.Premium,
		EffectiveDate: r.EffectiveDate,
		ExpiryDate:    r.ExpiryDate,
		Terms:         r.Terms,
	}
}

type CreatePartyRequest struct {
	ID            string `json:"id"`
	Role          string `json:"role" binding:"required,oneof=policyholder beneficiary"`
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	CompanyNumber string `json:"companyNumber"`
	Address       string `json:"address"`
}

func (r CreatePartyRequest) ToParty() entities.Party {
	return entities.Party{
		ID:            strings.TrimSpace(r.ID),
		Role:          entities.PartyRole(r.Role),
		Name:          r.Name,
		Email:         r.Email,
		CompanyNumber: r.CompanyNumber,
		Address:       r.Address,
	}
}
