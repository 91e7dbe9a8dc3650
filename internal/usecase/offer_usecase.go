package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOfferNotFound       = errors.New("offer not found")
	ErrInvalidOffer        = errors.New("invalid offer")
	ErrOfferNotEditable    = errors.New("offer is not editable")
	ErrOfferAlreadyDeleted = errors.New("offer already deleted")
	ErrOfferNotDeleted     = errors.New("offer is not deleted")
	ErrOfferExists         = interfaces.ErrOfferExists
)

// CreateOfferInput is what a broker submits when making an offer.
type CreateOfferInput struct {
	ProposalID     string
	PolicyholderID string
	BeneficiaryID  string
	BondAmount     float64
	Premium        float64
	EffectiveDate  time.Time
	ExpiryDate     time.Time
	Terms          string
}

// IOfferUseCase is the record-keeping side of offers: every mutation appends one
// history entry and deletes are soft.
type IOfferUseCase interface {
	Create(ctx context.Context, in CreateOfferInput, actor entities.Actor) (entities.Offer, error)
	List(ctx context.Context, includeDeleted bool) ([]entities.Offer, error)
	GetByID(ctx context.Context, id string) (entities.Offer, error)
	Update(ctx context.Context, id string, patch entities.OfferPatch, actor entities.Actor) (entities.Offer, error)
	SoftDelete(ctx context.Context, id string, actor entities.Actor) (entities.Offer, error)
	Restore(ctx context.Context, id string, actor entities.Actor) (entities.Offer, error)
	History(ctx context.Context, id string) ([]entities.EditHistoryEntry, error)
}

type OfferUseCase struct {
	repo    interfaces.IOfferRepository
	parties interfaces.IPartyRepository
	now     func() time.Time
}

var _ IOfferUseCase = (*OfferUseCase)(nil)

func NewOfferUseCase(repo interfaces.IOfferRepository, parties interfaces.IPartyRepository) *OfferUseCase {
	return &OfferUseCase{repo: repo, parties: parties, now: time.Now}
}

func (u *OfferUseCase) Create(ctx context.Context, in CreateOfferInput, actor entities.Actor) (entities.Offer, error) {
	in.ProposalID = strings.TrimSpace(in.ProposalID)
	in.PolicyholderID = strings.TrimSpace(in.PolicyholderID)
	in.BeneficiaryID = strings.TrimSpace(in.BeneficiaryID)
	if in.ProposalID == "" || in.PolicyholderID == "" || in.BeneficiaryID == "" {
		return entities.Offer{}, ErrInvalidOffer
	}
	if in.BondAmount <= 0 || in.Premium < 0 {
		return entities.Offer{}, ErrInvalidOffer
	}
	if !in.ExpiryDate.After(in.EffectiveDate) {
		return entities.Offer{}, ErrInvalidOffer
	}
	if err := u.requireParty(ctx, in.PolicyholderID, entities.PartyRolePolicyholder); err != nil {
		return entities.Offer{}, err
	}
	if err := u.requireParty(ctx, in.BeneficiaryID, entities.PartyRoleBeneficiary); err != nil {
		return entities.Offer{}, err
	}

	now := u.now().UTC()
	o := entities.Offer{
		ID:             uuid.NewString(),
		ProposalID:     in.ProposalID,
		PolicyholderID: in.PolicyholderID,
		BeneficiaryID:  in.BeneficiaryID,
		BondAmount:     in.BondAmount,
		Premium:        in.Premium,
		EffectiveDate:  in.EffectiveDate.UTC(),
		ExpiryDate:     in.ExpiryDate.UTC(),
		Terms:          in.Terms,
		Status:         entities.OfferStatusPending,
		Lifecycle:      entities.LifecycleActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	o.History = []entities.EditHistoryEntry{historyEntry(now, actor, entities.HistoryActionCreated, nil)}
	return u.repo.Create(ctx, o)
}

func (u *OfferUseCase) List(ctx context.Context, includeDeleted bool) ([]entities.Offer, error) {
	return u.repo.List(ctx, includeDeleted)
}

// GetByID hides soft-deleted offers; History still reaches them.
func (u *OfferUseCase) GetByID(ctx context.Context, id string) (entities.Offer, error) {
	o, err := u.get(ctx, id)
	if err != nil {
		return entities.Offer{}, err
	}
	if o.Lifecycle == entities.LifecycleSoftDeleted {
		return entities.Offer{}, ErrOfferNotFound
	}
	return o, nil
}

func (u *OfferUseCase) Update(ctx context.Context, id string, patch entities.OfferPatch, actor entities.Actor) (entities.Offer, error) {
	if patch.IsEmpty() {
		return entities.Offer{}, ErrInvalidOffer
	}
	cur, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Offer{}, err
	}
	if !cur.IsOpen() {
		return entities.Offer{}, ErrOfferNotEditable
	}

	next, changes := patch.Apply(cur)
	if len(changes) == 0 {
		return cur, nil
	}
	if next.BondAmount <= 0 || next.Premium < 0 || !next.ExpiryDate.After(next.EffectiveDate) {
		return entities.Offer{}, ErrInvalidOffer
	}

	entry := historyEntry(u.now().UTC(), actor, entities.HistoryActionUpdated, changes)
	updated, err := u.repo.Update(ctx, next, entry)
	if err != nil {
		return entities.Offer{}, err
	}
	if updated.ID == "" {
		return entities.Offer{}, ErrOfferNotEditable
	}
	return updated, nil
}

func (u *OfferUseCase) SoftDelete(ctx context.Context, id string, actor entities.Actor) (entities.Offer, error) {
	return u.setLifecycle(ctx, id, actor, entities.LifecycleActive, entities.LifecycleSoftDeleted, entities.HistoryActionSoftDeleted, ErrOfferAlreadyDeleted)
}

func (u *OfferUseCase) Restore(ctx context.Context, id string, actor entities.Actor) (entities.Offer, error) {
	return u.setLifecycle(ctx, id, actor, entities.LifecycleSoftDeleted, entities.LifecycleActive, entities.HistoryActionRestored, ErrOfferNotDeleted)
}

func (u *OfferUseCase) History(ctx context.Context, id string) ([]entities.EditHistoryEntry, error) {
	o, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.History == nil {
		return []entities.EditHistoryEntry{}, nil
	}
	return o.History, nil
}

func (u *OfferUseCase) setLifecycle(
	ctx context.Context,
	id string,
	actor entities.Actor,
	from, to entities.Lifecycle,
	action entities.HistoryAction,
	wrongState error,
) (entities.Offer, error) {
	if _, err := u.get(ctx, id); err != nil {
		return entities.Offer{}, err
	}
	entry := historyEntry(u.now().UTC(), actor, action, map[string]any{
		"lifecycle": map[string]any{"from": string(from), "to": string(to)},
	})
	o, err := u.repo.SetLifecycle(ctx, strings.TrimSpace(id), from, to, entry)
	if err != nil {
		return entities.Offer{}, err
	}
	if o.ID == "" {
		return entities.Offer{}, wrongState
	}
	return o, nil
}

func (u *OfferUseCase) get(ctx context.Context, id string) (entities.Offer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Offer{}, ErrOfferNotFound
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Offer{}, err
	}
	if o.ID == "" {
		return entities.Offer{}, ErrOfferNotFound
	}
	return o, nil
}

func (u *OfferUseCase) requireParty(ctx context.Context, id string, role entities.PartyRole) error {
	p, err := u.parties.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrPartyNotFound
	}
	if p.Role != role {
		return ErrInvalidOffer
	}
	return nil
}

func historyEntry(at time.Time, actor entities.Actor, action entities.HistoryAction, changes map[string]any) entities.EditHistoryEntry {
	return entities.EditHistoryEntry{
		ID:        uuid.NewString(),
		Timestamp: at,
		UserID:    actor.UserID,
		UserName:  actor.UserName,
		Action:    action,
		Changes:   changes,
	}
}
