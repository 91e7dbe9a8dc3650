package usecase

import (
	"context"
	"errors"
	"strings"

	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPartyNotFound = errors.New("party not found")
	ErrInvalidParty  = errors.New("invalid party")
	ErrPartyExists   = interfaces.ErrPartyExists
)

type IPartyUseCase interface {
	Create(ctx context.Context, p entities.Party) (entities.Party, error)
	GetByID(ctx context.Context, id string) (entities.Party, error)
}

type PartyUseCase struct {
	repo interfaces.IPartyRepository
}

var _ IPartyUseCase = (*PartyUseCase)(nil)

func NewPartyUseCase(repo interfaces.IPartyRepository) *PartyUseCase {
	return &PartyUseCase{repo: repo}
}

func (u *PartyUseCase) Create(ctx context.Context, p entities.Party) (entities.Party, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	if !p.Role.Valid() || p.Name == "" || !strings.Contains(p.Email, "@") {
		return entities.Party{}, ErrInvalidParty
	}
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return u.repo.Create(ctx, p)
}

func (u *PartyUseCase) GetByID(ctx context.Context, id string) (entities.Party, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Party{}, ErrPartyNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Party{}, err
	}
	if p.ID == "" {
		return entities.Party{}, ErrPartyNotFound
	}
	return p, nil
}
