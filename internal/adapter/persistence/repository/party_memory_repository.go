package repository

import (
	"context"
	"sync"

	"bond_portal/internal/domain/entities"
	"bond_portal/internal/usecase/interfaces"
)


type PartyMemoryRepository struct {
	mu      sync.RWMutex
	parties map[string]entities.Party
}

var _ interfaces.IPartyRepository = (*PartyMemoryRepository)(nil)

func NewPartyMemoryRepository(seed ...entities.Party) *PartyMemoryRepository {
	r := &PartyMemoryRepository{parties: map[string]entities.Party{}}
	for _, p := range seed {
		r.parties[p.ID] = p
	}
	return r
}

func (r *PartyMemoryRepository) Create(_ context.Context, p entities.Party) (entities.Party, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.parties[p.ID]; ok {
		return entities.Party{}, interfaces.ErrPartyExists
	}
	r.parties[p.ID] = p
	return p, nil
}

func (r *PartyMemoryRepository) GetByID(_ context.Context, id string) (entities.Party, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.parties[id], nil
}
